package models

import "time"

// AdminSession is the server-side record of an admin login. It lives in a
// key-value store under an opaque session id and carries its own issue
// time so validity can be checked without trusting the transport.
type AdminSession struct {
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issued_at"`
}

// IsValid reports whether the session is authenticated and younger than
// maxAge at the given instant.
func (s AdminSession) IsValid(now time.Time, maxAge time.Duration) bool {
	if !s.Authenticated {
		return false
	}
	age := now.Sub(s.IssuedAt)
	return age >= 0 && age < maxAge
}
