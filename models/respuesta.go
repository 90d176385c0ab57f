package models

// Respuesta is a single reply inside a topic thread.
type Respuesta struct {
	ID                 int64   `json:"id"`
	Mensaje            string  `json:"mensaje"`
	FechaCreacion      Fecha   `json:"fechaCreacion"`
	FechaActualizacion Fecha   `json:"fechaActualizacion"`
	Autor              Usuario `json:"autor"`

	// Solucion marks the reply the topic author (or a moderator) accepted
	// as the answer. At most one reply per topic carries it.
	Solucion bool `json:"solucion"`
}
