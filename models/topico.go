package models

// TopicoStatus enumerates the lifecycle states of a discussion topic.
type TopicoStatus string

const (
	StatusAbierto  TopicoStatus = "ABIERTO"
	StatusCerrado  TopicoStatus = "CERRADO"
	StatusResuelto TopicoStatus = "RESUELTO"
)

// Topico is the summary representation used in paginated listings.
// Values are immutable once fetched; any change arrives via a refetch.
type Topico struct {
	ID                 int64        `json:"id"`
	Titulo             string       `json:"titulo"`
	Mensaje            string       `json:"mensaje"`
	FechaCreacion      Fecha        `json:"fechaCreacion"`
	FechaActualizacion Fecha        `json:"fechaActualizacion,omitempty"`
	Status             TopicoStatus `json:"status"`
	AutorNombre        string       `json:"autorNombre"`
	CursoNombre        string       `json:"cursoNombre"`
	TotalRespuestas    int          `json:"totalRespuestas"`
}

// DetalleTopico is the full topic view: complete author identity, full
// course record, and the ordered reply thread.
type DetalleTopico struct {
	ID                 int64        `json:"id"`
	Titulo             string       `json:"titulo"`
	Mensaje            string       `json:"mensaje"`
	FechaCreacion      Fecha        `json:"fechaCreacion"`
	FechaActualizacion Fecha        `json:"fechaActualizacion"`
	Status             TopicoStatus `json:"status"`
	Autor              Usuario      `json:"autor"`
	Curso              Curso        `json:"curso"`
	Respuestas         []Respuesta  `json:"respuestas"`
}

// PermiteRespuestas reports whether new replies may be submitted. The server
// enforces this; the client must not even offer the reply form for closed or
// resolved topics.
func (d DetalleTopico) PermiteRespuestas() bool {
	return d.Status == StatusAbierto
}
