package models

// Session is the client-side authentication record. It is replaced
// wholesale on every transition: token and user are set together on login
// and cleared together on logout, never one without the other.
type Session struct {
	// User is the authenticated identity, nil when logged out.
	User *Usuario `json:"user"`

	// Token is the opaque bearer credential, empty when logged out.
	Token string `json:"token"`

	// IsAuthenticated is true exactly when both Token and User are set.
	IsAuthenticated bool `json:"isAuthenticated"`
}

// EmptySession is the logged-out state. Restoring a missing or malformed
// persisted record yields this value.
func EmptySession() Session {
	return Session{}
}

// Valid reports whether the session satisfies its own invariant.
// A record read back from storage that fails this check is discarded.
func (s Session) Valid() bool {
	return s.IsAuthenticated == (s.Token != "" && s.User != nil)
}
