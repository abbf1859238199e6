package model

// AuthContext carries the verified identity for an authenticated request.
// It is built from token claims by the auth middleware and lives only for
// the duration of one request.
type AuthContext struct {
	UserID string
	Email  string
}
