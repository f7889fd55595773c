package domain

import "time"

// PayoutStatus is the state of a transfer to an explorer.
type PayoutStatus string

const (
	PayoutPending PayoutStatus = "pending"
	PayoutPaid    PayoutStatus = "paid"
	PayoutFailed  PayoutStatus = "failed"
)

// Payout moves an explorer's earned balance to their connected account.
type Payout struct {
	ID            PayoutID
	ExplorerID    UserID
	Amount        int64
	Currency      string
	Status        PayoutStatus
	TransferID    string
	FailureReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Balance summarizes an explorer's earnings in minor units.
type Balance struct {
	Currency string
	// Earned is the net of all confirmed sponsorships.
	Earned int64
	// PaidOut is the sum of pending and paid payouts.
	PaidOut int64
}

// Available is what can still be paid out.
func (b Balance) Available() int64 {
	return b.Earned - b.PaidOut
}

// TransferGroup ties the platform charges collected for an explorer to the
// transfers paying them out.
func TransferGroup(explorer UserID) string {
	return "explorer_" + explorer.String()
}
