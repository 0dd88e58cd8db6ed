package model

// Scope identifies the authenticated caller of a usecase.
type Scope struct {
	UserID   string
	Username string
	Email    string
}

// IsZero reports whether no user is attached.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
