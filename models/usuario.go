package models

// PerfilTipo enumerates the access levels a forum profile can grant.
type PerfilTipo string

const (
	PerfilUsuario       PerfilTipo = "USUARIO"
	PerfilModerador     PerfilTipo = "MODERADOR"
	PerfilAdministrador PerfilTipo = "ADMINISTRADOR"
)

// Perfil is the role attached to a user account. The server is the only
// authority on its contents; the client never synthesises role data.
type Perfil struct {
	ID          int64      `json:"id"`
	Nombre      string     `json:"nombre"`
	Tipo        PerfilTipo `json:"tipo"`
	Descripcion string     `json:"descripcion"`
}

// Usuario is the identity of a forum account as returned by the server.
// It contains no credential material; the bearer token travels separately.
type Usuario struct {
	ID                int64  `json:"id"`
	Nombre            string `json:"nombre"`
	CorreoElectronico string `json:"correoElectronico"`
	FechaCreacion     Fecha  `json:"fechaCreacion"`
	Perfil            Perfil `json:"perfil"`
}

// EsModerador reports whether the user holds moderator or administrator
// rights, which unlock solution marking and foreign-topic deletion.
func (u Usuario) EsModerador() bool {
	return u.Perfil.Tipo == PerfilModerador || u.Perfil.Tipo == PerfilAdministrador
}
