package models

// LoginRequest carries the credentials for POST /auth/login.
type LoginRequest struct {
	CorreoElectronico string `json:"correoElectronico"`
	Contrasena        string `json:"contrasena"`
}

// RegistroRequest carries the payload for POST /auth/register.
type RegistroRequest struct {
	Nombre            string `json:"nombre"`
	CorreoElectronico string `json:"correoElectronico"`
	Contrasena        string `json:"contrasena"`
}

// CrearTopico carries the payload for POST /topicos.
type CrearTopico struct {
	Titulo  string `json:"titulo"`
	Mensaje string `json:"mensaje"`
	CursoID int64  `json:"cursoId"`
}

// ActualizarTopico carries the payload for PUT /topicos/{id}. Nil fields are
// omitted from the request and left untouched by the server.
type ActualizarTopico struct {
	Titulo  *string `json:"titulo,omitempty"`
	Mensaje *string `json:"mensaje,omitempty"`
	CursoID *int64  `json:"cursoId,omitempty"`
}

// CrearRespuesta carries the payload for POST /respuestas/topico/{id}.
type CrearRespuesta struct {
	Mensaje string `json:"mensaje"`
}

// ActualizarRespuesta carries the payload for PUT /respuestas/{id}.
type ActualizarRespuesta struct {
	Mensaje string `json:"mensaje"`
}
