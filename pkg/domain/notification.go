package domain

import "time"

// NotificationKind tells what happened.
type NotificationKind string

const (
	NotificationFollow      NotificationKind = "follow"
	NotificationSponsorship NotificationKind = "sponsorship"
	NotificationEntry       NotificationKind = "entry"
	NotificationMessage     NotificationKind = "message"
	NotificationPayout      NotificationKind = "payout"
)

// Notification is an in-app notice addressed to a user.
type Notification struct {
	ID            NotificationID
	UserID        UserID
	ActorID       *UserID
	Kind          NotificationKind
	EntryID       *EntryID
	SponsorshipID *SponsorshipID
	IsRead        bool
	CreatedAt     time.Time
}
