package domain

import "time"

// MembershipPlan is the billing plan of Explorer Pro.
type MembershipPlan string

const (
	PlanMonthly MembershipPlan = "monthly"
	PlanAnnual  MembershipPlan = "annual"
)

func (p MembershipPlan) Valid() bool {
	return p == PlanMonthly || p == PlanAnnual
}

// MembershipStatus is the subscription state of a membership.
type MembershipStatus string

const (
	MembershipIncomplete MembershipStatus = "incomplete"
	MembershipActive     MembershipStatus = "active"
	MembershipCanceled   MembershipStatus = "canceled"
)

// Membership is an Explorer Pro subscription. An active membership grants the
// creator role.
type Membership struct {
	ID                   MembershipID
	UserID               UserID
	Plan                 MembershipPlan
	Status               MembershipStatus
	StripeSubscriptionID string
	CurrentPeriodEnd     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MembershipCheckout carries the client secret of the first invoice.
type MembershipCheckout struct {
	Membership   Membership
	ClientSecret string
}
