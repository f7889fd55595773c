// Package mailer renders and sends transactional emails.
package mailer

import "context"

// Template names known to every Mailer.
const (
	TemplateWelcome             = "welcome"
	TemplateSponsorshipReceived = "sponsorship_received"
	TemplatePayoutPaid          = "payout_paid"
	TemplatePayoutFailed        = "payout_failed"
)

// Mailer sends a templated email. Data keys are template specific.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Mailer interface {
	Send(ctx context.Context, to, template string, data map[string]string) error
}
