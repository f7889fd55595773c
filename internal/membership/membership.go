// Package membership manages Explorer Pro subscriptions. An active membership
// grants the creator role; losing it takes the role back.
package membership

import (
	"context"
	"fmt"
	"journal/internal/config"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"time"

	"go.uber.org/zap"
)

type Options struct {
	MonthlyPriceID string
	AnnualPriceID  string
	// Expiry is how long a membership may stay incomplete.
	Expiry time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MonthlyPriceID: cfg.Stripe.ProMonthlyPriceID,
		AnnualPriceID:  cfg.Stripe.ProAnnualPriceID,
		Expiry:         cfg.Worker.MembershipExpiry,
	}
}

type Deps struct {
	Storage  storage.Storage
	Payments payments.Client
}

type service struct {
	options Options
	Deps
	now func() time.Time
}

func (s *service) priceID(plan domain.MembershipPlan) string {
	if plan == domain.PlanAnnual {
		return s.options.AnnualPriceID
	}

	return s.options.MonthlyPriceID
}

func (s *service) Subscribe(ctx context.Context, userID domain.UserID, plan domain.MembershipPlan) (*domain.MembershipCheckout, error) {
	if !plan.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid plan %q", plan)
	}
	priceID := s.priceID(plan)
	if priceID == "" {
		return nil, serrors.With(serrors.ErrUnavailable, "the %s plan is not available", plan)
	}

	current, err := s.Storage.CurrentMembership(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get membership: %w", err)
	}
	if current != nil && current.Status == domain.MembershipActive {
		return nil, serrors.With(serrors.ErrConflict, "you already have Explorer Pro")
	}

	user, err := s.Storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}
	customerID := user.StripeCustomerID
	if customerID == "" {
		customerID, err = s.Payments.CreateCustomer(ctx, user.Email, user.Username, map[string]string{"user_id": user.ID.String()})
		if err != nil {
			return nil, fmt.Errorf("could not create customer: %w", err)
		}
		if _, err := s.Storage.UpdateUser(ctx, user.ID, storage.UserUpdates{StripeCustomerID: &customerID}); err != nil {
			return nil, fmt.Errorf("could not store customer: %w", err)
		}
	}

	sub, err := s.Payments.CreateSubscription(ctx, payments.SubscriptionParams{
		CustomerID: customerID,
		PriceID:    priceID,
		Metadata:   map[string]string{"user_id": user.ID.String(), "plan": string(plan)},
	})
	if err != nil {
		return nil, fmt.Errorf("could not create subscription: %w", err)
	}

	m, err := s.Storage.CreateMembership(ctx, domain.Membership{
		UserID:               userID,
		Plan:                 plan,
		Status:               domain.MembershipIncomplete,
		StripeSubscriptionID: sub.ID,
		CurrentPeriodEnd:     sub.CurrentPeriodEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store membership: %w", err)
	}

	return &domain.MembershipCheckout{Membership: *m, ClientSecret: sub.ClientSecret}, nil
}

func (s *service) Current(ctx context.Context, userID domain.UserID) (*domain.Membership, error) {
	m, err := s.Storage.CurrentMembership(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get membership: %w", err)
	}
	if m == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no membership")
	}

	return m, nil
}

// Cancel stops the subscription at the provider. The creator role is removed
// when the provider confirms the deletion.
func (s *service) Cancel(ctx context.Context, userID domain.UserID) (*domain.Membership, error) {
	m, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.Payments.CancelSubscription(ctx, m.StripeSubscriptionID); err != nil {
		return nil, fmt.Errorf("could not cancel subscription: %w", err)
	}
	status := domain.MembershipCanceled
	updated, err := s.Storage.UpdateMembership(ctx, m.ID, storage.MembershipUpdates{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("could not update membership: %w", err)
	}

	return updated, nil
}

func (s *service) ExpireIncomplete(ctx context.Context) (int64, error) {
	n, err := s.Storage.ExpireIncompleteMemberships(ctx, s.now().Add(-s.options.Expiry))
	if err != nil {
		return 0, fmt.Errorf("could not expire memberships: %w", err)
	}

	return n, nil
}

func setRole(ctx context.Context, tx storage.AllStorage, userID domain.UserID, from, to domain.Role) error {
	user, err := tx.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.Role != from {
		return nil
	}
	if _, err := tx.UpdateUser(ctx, userID, storage.UserUpdates{Role: &to}); err != nil {
		return fmt.Errorf("could not update role: %w", err)
	}
	logger.Info(ctx, "role changed", zap.Stringer("userID", userID), zap.String("role", string(to)))

	return nil
}

// HandleEvent applies subscription billing events to memberships. Admins keep
// their role either way.
func (s *service) HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error {
	if event.Type != payments.EventInvoicePaid && event.Type != payments.EventSubscriptionDeleted {
		return nil
	}
	m, err := tx.MembershipBySubscription(ctx, event.SubscriptionID)
	if err != nil {
		return fmt.Errorf("could not get membership: %w", err)
	}
	if m == nil {
		return nil
	}

	updates := storage.MembershipUpdates{}
	from, to := domain.RoleUser, domain.RoleCreator
	status := domain.MembershipActive
	if event.Type == payments.EventSubscriptionDeleted {
		from, to = domain.RoleCreator, domain.RoleUser
		status = domain.MembershipCanceled
	} else if !event.PeriodEnd.IsZero() {
		updates.CurrentPeriodEnd = &event.PeriodEnd
	}
	updates.Status = &status

	if _, err := tx.UpdateMembership(ctx, m.ID, updates); err != nil {
		return fmt.Errorf("could not update membership: %w", err)
	}

	return setRole(ctx, tx, m.UserID, from, to)
}

func New(deps Deps, options Options) Service {
	if options.Expiry <= 0 {
		options.Expiry = 24 * time.Hour
	}

	return &service{options: options, Deps: deps, now: time.Now}
}
