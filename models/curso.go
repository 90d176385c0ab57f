package models

// Curso is a course topics are filed under.
type Curso struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Categoria   string `json:"categoria"`
	Descripcion string `json:"descripcion"`
}
