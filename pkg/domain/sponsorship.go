package domain

import "time"

// TierInterval is the billing interval of a sponsorship tier.
type TierInterval string

const (
	IntervalOneTime TierInterval = "one_time"
	IntervalMonth   TierInterval = "month"
)

func (i TierInterval) Valid() bool {
	return i == IntervalOneTime || i == IntervalMonth
}

// SponsorshipTier is a price point an explorer offers to sponsors.
type SponsorshipTier struct {
	ID          TierID
	ExplorerID  UserID
	Title       string
	Description string
	// Price is in minor units of the platform currency.
	Price    int64
	Interval TierInterval
	Active   bool

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt time.Time
}

// SponsorshipType distinguishes one-off payments from monthly subscriptions.
type SponsorshipType string

const (
	SponsorshipOneTime   SponsorshipType = "one_time"
	SponsorshipRecurring SponsorshipType = "recurring"
)

func (t SponsorshipType) Valid() bool {
	return t == SponsorshipOneTime || t == SponsorshipRecurring
}

// SponsorshipStatus is the payment state of a sponsorship.
type SponsorshipStatus string

const (
	SponsorshipPending   SponsorshipStatus = "pending"
	SponsorshipConfirmed SponsorshipStatus = "confirmed"
	SponsorshipCanceled  SponsorshipStatus = "canceled"
	SponsorshipFailed    SponsorshipStatus = "failed"
)

// Sponsorship is money sent from a sponsor to an explorer.
type Sponsorship struct {
	ID         SponsorshipID
	SponsorID  UserID
	ExplorerID UserID
	TierID     *TierID

	// Amount and Fee are in minor units of Currency. Fee is the platform cut.
	Amount   int64
	Currency string
	Fee      int64
	// PaidCount is the number of successful charges: one for a paid one-time
	// sponsorship, one per billed period for a recurring one.
	PaidCount int

	Type    SponsorshipType
	Status  SponsorshipStatus
	Message string

	PaymentIntentID      string
	StripeSubscriptionID string
	CurrentPeriodEnd     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Net is the amount credited to the explorer for a single charge.
func (s Sponsorship) Net() int64 {
	return s.Amount - s.Fee
}

// Checkout is what a client needs to complete a payment.
type Checkout struct {
	Sponsorship  Sponsorship
	ClientSecret string
}
