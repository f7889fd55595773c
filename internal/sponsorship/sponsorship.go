// Package sponsorship implements sponsorship tiers and the checkout of
// one-time and monthly sponsorships. Funds are collected on the platform
// account and paid out to explorers by the payout service.
package sponsorship

import (
	"context"
	"fmt"
	"journal/internal/config"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/money"
	"journal/pkg/payments"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"
	"unicode/utf8"
)

const maxMessageLength = 500

// Options configure amounts and the platform fee.
type Options struct {
	Currency string
	// FeeBasisPoints is the platform cut, 1000 = 10%.
	FeeBasisPoints int
	// MinAmount is the smallest sponsorship in minor units.
	MinAmount int64
	// ProductID is the provider product recurring sponsorships are billed on.
	ProductID string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Currency:       cfg.Fees.Currency,
		FeeBasisPoints: cfg.Fees.BasisPoints,
		MinAmount:      cfg.Fees.MinSponsorship,
		ProductID:      cfg.Stripe.SponsorshipProductID,
	}
}

type Deps struct {
	Storage  storage.Storage
	Payments payments.Client
	Emitter  *events.Emitter
}

type service struct {
	options Options
	Deps
}

func (s *service) resolveAmount(ctx context.Context, explorer domain.User, input CheckoutInput) (int64, domain.SponsorshipType, error) {
	if input.TierID == nil {
		if input.Type == "" {
			input.Type = domain.SponsorshipOneTime
		}
		if !input.Type.Valid() {
			return 0, "", serrors.With(serrors.ErrBadRequest, "invalid sponsorship type %q", input.Type)
		}

		return input.Amount, input.Type, nil
	}

	tier, err := s.Storage.TierByID(ctx, *input.TierID)
	if err != nil {
		return 0, "", fmt.Errorf("could not get tier: %w", err)
	}
	if tier == nil || tier.ExplorerID != explorer.ID || !tier.Active {
		return 0, "", serrors.With(serrors.ErrNotFound, "tier not found")
	}
	if tier.Interval == domain.IntervalMonth {
		return tier.Price, domain.SponsorshipRecurring, nil
	}

	return tier.Price, domain.SponsorshipOneTime, nil
}

// customer returns the provider customer of the user, creating it on first use.
func (s *service) customer(ctx context.Context, user domain.User) (string, error) {
	if user.StripeCustomerID != "" {
		return user.StripeCustomerID, nil
	}
	id, err := s.Payments.CreateCustomer(ctx, user.Email, user.Username, map[string]string{"user_id": user.ID.String()})
	if err != nil {
		return "", fmt.Errorf("could not create customer: %w", err)
	}
	if _, err := s.Storage.UpdateUser(ctx, user.ID, storage.UserUpdates{StripeCustomerID: &id}); err != nil {
		return "", fmt.Errorf("could not store customer: %w", err)
	}

	return id, nil
}

func (s *service) Checkout(ctx context.Context, sponsor domain.UserID, input CheckoutInput) (*domain.Checkout, error) {
	explorer, err := s.Storage.UserByUsername(ctx, input.Explorer)
	if err != nil {
		return nil, fmt.Errorf("could not get explorer: %w", err)
	}
	if explorer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %q not found", input.Explorer)
	}
	if explorer.ID == sponsor {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot sponsor yourself")
	}
	if !explorer.CanReceiveSponsorships() {
		return nil, serrors.With(serrors.ErrBadRequest, "%s cannot receive sponsorships yet", explorer.Username)
	}

	amount, kind, err := s.resolveAmount(ctx, *explorer, input)
	if err != nil {
		return nil, err
	}
	if amount < s.options.MinAmount {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must be at least %s",
			money.Format(s.options.MinAmount, s.options.Currency))
	}
	if amount > money.MaxAmount {
		return nil, serrors.With(serrors.ErrBadRequest, "amount must be at most %s",
			money.Format(money.MaxAmount, s.options.Currency))
	}
	message := strings.TrimSpace(sanitize.Text(input.Message))
	if utf8.RuneCountInString(message) > maxMessageLength {
		return nil, serrors.With(serrors.ErrBadRequest, "message must be at most %d characters", maxMessageLength)
	}

	payer, err := s.Storage.UserByID(ctx, sponsor)
	if err != nil {
		return nil, fmt.Errorf("could not get sponsor: %w", err)
	}
	if payer == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown sponsor")
	}

	sp := domain.Sponsorship{
		SponsorID:  sponsor,
		ExplorerID: explorer.ID,
		TierID:     input.TierID,
		Amount:     amount,
		Currency:   s.options.Currency,
		Fee:        money.Fee(amount, s.options.FeeBasisPoints),
		Type:       kind,
		Status:     domain.SponsorshipPending,
		Message:    message,
	}
	metadata := map[string]string{
		"sponsor_id":  sponsor.String(),
		"explorer_id": explorer.ID.String(),
	}

	var clientSecret string
	switch kind {
	case domain.SponsorshipRecurring:
		customerID, err := s.customer(ctx, *payer)
		if err != nil {
			return nil, err
		}
		sub, err := s.Payments.CreateSubscription(ctx, payments.SubscriptionParams{
			CustomerID: customerID,
			ProductID:  s.options.ProductID,
			Amount:     amount,
			Currency:   s.options.Currency,
			Interval:   string(domain.IntervalMonth),
			Metadata:   metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create subscription: %w", err)
		}
		sp.StripeSubscriptionID = sub.ID
		sp.CurrentPeriodEnd = sub.CurrentPeriodEnd
		clientSecret = sub.ClientSecret
	default:
		intent, err := s.Payments.CreatePaymentIntent(ctx, payments.PaymentIntentParams{
			Amount:        amount,
			Currency:      s.options.Currency,
			CustomerID:    payer.StripeCustomerID,
			Description:   "Sponsorship of @" + explorer.Username,
			TransferGroup: domain.TransferGroup(explorer.ID),
			Metadata:      metadata,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create payment intent: %w", err)
		}
		sp.PaymentIntentID = intent.ID
		clientSecret = intent.ClientSecret
	}

	created, err := s.Storage.CreateSponsorship(ctx, sp)
	if err != nil {
		return nil, fmt.Errorf("could not store sponsorship: %w", err)
	}

	return &domain.Checkout{Sponsorship: *created, ClientSecret: clientSecret}, nil
}

// Cancel stops a monthly sponsorship. Charges already collected stay credited.
func (s *service) Cancel(ctx context.Context, sponsor domain.UserID, id domain.SponsorshipID) (*domain.Sponsorship, error) {
	sp, err := s.Storage.SponsorshipByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get sponsorship: %w", err)
	}
	if sp == nil || sp.SponsorID != sponsor {
		return nil, serrors.With(serrors.ErrNotFound, "sponsorship not found")
	}
	if sp.Type != domain.SponsorshipRecurring {
		return nil, serrors.With(serrors.ErrBadRequest, "only monthly sponsorships can be canceled")
	}
	if sp.Status == domain.SponsorshipCanceled {
		return sp, nil
	}

	if err := s.Payments.CancelSubscription(ctx, sp.StripeSubscriptionID); err != nil {
		return nil, fmt.Errorf("could not cancel subscription: %w", err)
	}
	status := domain.SponsorshipCanceled
	updated, err := s.Storage.UpdateSponsorship(ctx, id, storage.SponsorshipUpdates{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("could not update sponsorship: %w", err)
	}

	return updated, nil
}

func (s *service) list(ctx context.Context, filter storage.SponsorshipFilter, cursor string, limit uint) ([]domain.Sponsorship, string, error) {
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	page, err := s.Storage.Sponsorships(ctx, filter, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list sponsorships: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

func (s *service) Given(ctx context.Context, sponsor domain.UserID, cursor string, limit uint) ([]domain.Sponsorship, string, error) {
	return s.list(ctx, storage.SponsorshipFilter{SponsorID: &sponsor}, cursor, limit)
}

func (s *service) Received(ctx context.Context, explorer domain.UserID, cursor string, limit uint) ([]domain.Sponsorship, string, error) {
	return s.list(ctx, storage.SponsorshipFilter{ExplorerID: &explorer}, cursor, limit)
}

func New(deps Deps, options Options) Service {
	if options.Currency == "" {
		options.Currency = "usd"
	}

	return &service{options: options, Deps: deps}
}
