package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user.
type UserID uuid.UUID

// EntryID uniquely identifies a journal entry.
type EntryID uuid.UUID

// ExpeditionID uniquely identifies an expedition.
type ExpeditionID uuid.UUID

// TierID uniquely identifies a sponsorship tier.
type TierID uuid.UUID

// SponsorshipID uniquely identifies a sponsorship.
type SponsorshipID uuid.UUID

// PayoutID uniquely identifies a payout.
type PayoutID uuid.UUID

// NotificationID uniquely identifies a notification.
type NotificationID uuid.UUID

// MembershipID uniquely identifies an Explorer Pro membership.
type MembershipID uuid.UUID

// MessageID uniquely identifies a direct message.
type MessageID uuid.UUID

func (id UserID) String() string         { return uuid.UUID(id).String() }
func (id EntryID) String() string        { return uuid.UUID(id).String() }
func (id ExpeditionID) String() string   { return uuid.UUID(id).String() }
func (id TierID) String() string         { return uuid.UUID(id).String() }
func (id SponsorshipID) String() string  { return uuid.UUID(id).String() }
func (id PayoutID) String() string       { return uuid.UUID(id).String() }
func (id NotificationID) String() string { return uuid.UUID(id).String() }
func (id MembershipID) String() string   { return uuid.UUID(id).String() }
func (id MessageID) String() string      { return uuid.UUID(id).String() }

// IDs marshal to their canonical UUID text in JSON and job arguments.
func (id UserID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id EntryID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id ExpeditionID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id TierID) MarshalText() ([]byte, error)         { return uuid.UUID(id).MarshalText() }
func (id SponsorshipID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id PayoutID) MarshalText() ([]byte, error)       { return uuid.UUID(id).MarshalText() }
func (id NotificationID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id MembershipID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id MessageID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }

func (id *UserID) UnmarshalText(b []byte) error         { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *EntryID) UnmarshalText(b []byte) error        { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ExpeditionID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *TierID) UnmarshalText(b []byte) error         { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *SponsorshipID) UnmarshalText(b []byte) error  { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PayoutID) UnmarshalText(b []byte) error       { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *NotificationID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *MembershipID) UnmarshalText(b []byte) error   { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *MessageID) UnmarshalText(b []byte) error      { return (*uuid.UUID)(id).UnmarshalText(b) }

// ParseID parses the textual form of a UUID into any of the typed IDs.
func ParseID[T ~[16]byte](s string) (T, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		var zero T

		return zero, fmt.Errorf("could not parse id %q: %w", s, err)
	}

	return T(u), nil
}
