package domain

import "time"

// Role is the authorization role of a user.
type Role string

const (
	// RoleUser is a regular account: it can write entries and sponsor explorers.
	RoleUser Role = "user"
	// RoleCreator is an Explorer Pro account: it can receive sponsorships and send messages.
	RoleCreator Role = "creator"
	// RoleAdmin has every capability of a creator and moderation rights.
	RoleAdmin Role = "admin"
)

// User is an account on the platform. Explorers are users; Explorer Pro
// explorers have the creator role.
type User struct {
	ID           UserID
	Username     string
	Email        string
	PasswordHash string
	Role         Role

	Name      string
	Bio       string
	Location  string
	AvatarURL string
	Website   string

	// StripeCustomerID is set once the user starts a recurring payment.
	StripeCustomerID string
	// StripeAccountID is the connected account receiving payouts.
	StripeAccountID string
	// PayoutsEnabled reports whether the connected account finished onboarding.
	PayoutsEnabled bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// IsPro reports whether the user has Explorer Pro capabilities.
func (u User) IsPro() bool {
	return u.Role == RoleCreator || u.Role == RoleAdmin
}

// CanReceiveSponsorships reports whether sponsors may check out to this user.
func (u User) CanReceiveSponsorships() bool {
	return u.IsPro() && u.PayoutsEnabled && u.StripeAccountID != ""
}

// Profile is the public view of a user together with aggregate counters.
type Profile struct {
	User User

	Followers   int64
	Following   int64
	Entries     int64
	Expeditions int64
	// IsFollowing reports whether the viewer follows this user. Always false for anonymous viewers.
	IsFollowing bool
}
