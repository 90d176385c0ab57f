package models

// TokenResponse is the authentication result of POST /auth/login and
// POST /auth/register. Token is an opaque bearer credential: the client
// never decodes or verifies it.
type TokenResponse struct {
	// Token is the compact credential attached to authorized requests.
	Token string `json:"token"`

	// Tipo is the authorization scheme, always "Bearer".
	Tipo string `json:"tipo"`

	// Expiracion is the token lifetime in milliseconds, informational only.
	Expiracion int64 `json:"expiracion"`
}

// ErrorResponse is the structured error envelope the server returns for
// application-level failures.
type ErrorResponse struct {
	Codigo   string            `json:"codigo"`
	Mensaje  string            `json:"mensaje"`
	Detalles map[string]string `json:"detalles,omitempty"`
}

// Estadisticas are the forum-wide counters from GET /estadisticas.
type Estadisticas struct {
	TotalTopicos     int64 `json:"totalTopicos"`
	TotalRespuestas  int64 `json:"totalRespuestas"`
	TotalUsuarios    int64 `json:"totalUsuarios"`
	TotalCursos      int64 `json:"totalCursos"`
	TopicosResueltos int64 `json:"topicosResueltos"`
	TopicosAbiertos  int64 `json:"topicosAbiertos"`
}
