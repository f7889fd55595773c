package domain

import "time"

// Session is an authenticated browser or device session.
type Session struct {
	ID        string
	UserID    UserID
	UserAgent string
	IP        string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID    UserID
	Username  string
	Role      Role
	SessionID string
}

func (p Principal) IsPro() bool {
	return p.Role == RoleCreator || p.Role == RoleAdmin
}
