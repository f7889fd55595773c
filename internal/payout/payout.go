// Package payout moves the earned balance of explorers to their connected
// accounts.
package payout

import (
	"context"
	"fmt"
	"journal/internal/config"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/metrics"
	"journal/pkg/money"
	"journal/pkg/payments"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"

	"go.uber.org/zap"
)

type Options struct {
	Currency string
	// MinAmount is the smallest payout in minor units.
	MinAmount int64
	// AccountCountry is the country of new connected accounts.
	AccountCountry string
	// PublicURL is the web app origin onboarding redirects back to.
	PublicURL string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Currency:       cfg.Fees.Currency,
		MinAmount:      cfg.Fees.MinPayout,
		AccountCountry: cfg.Stripe.AccountCountry,
		PublicURL:      cfg.PublicURL,
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

func (s *service) Onboard(ctx context.Context, principal domain.Principal) (*payments.AccountLink, error) {
	if !principal.IsPro() {
		return nil, serrors.With(serrors.ErrPaymentRequired, "payouts require Explorer Pro")
	}
	user, err := s.Storage.UserByID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "unknown user")
	}

	accountID := user.StripeAccountID
	if accountID == "" {
		accountID, err = s.Payments.CreateConnectedAccount(ctx, user.Email, s.options.AccountCountry)
		if err != nil {
			return nil, fmt.Errorf("could not create connected account: %w", err)
		}
		if _, err := s.Storage.UpdateUser(ctx, user.ID, storage.UserUpdates{StripeAccountID: &accountID}); err != nil {
			return nil, fmt.Errorf("could not store connected account: %w", err)
		}
		logger.Info(ctx, "connected account created", zap.Stringer("userID", user.ID), zap.String("accountID", accountID))
	}

	base := strings.TrimRight(s.options.PublicURL, "/") + "/settings/payouts"
	link, err := s.Payments.CreateAccountLink(ctx, accountID, base+"?refresh=1", base)
	if err != nil {
		return nil, fmt.Errorf("could not create account link: %w", err)
	}

	return link, nil
}

func balance(ctx context.Context, st storage.AllStorage, explorer domain.UserID, currency string) (*domain.Balance, error) {
	earned, err := st.EarnedTotal(ctx, explorer)
	if err != nil {
		return nil, fmt.Errorf("could not sum earnings: %w", err)
	}
	paidOut, err := st.PaidOutTotal(ctx, explorer)
	if err != nil {
		return nil, fmt.Errorf("could not sum payouts: %w", err)
	}

	return &domain.Balance{Currency: currency, Earned: earned, PaidOut: paidOut}, nil
}

func (s *service) Balance(ctx context.Context, explorer domain.UserID) (*domain.Balance, error) {
	return balance(ctx, s.Storage, explorer, s.options.Currency)
}

// Request reserves amount of the available balance as a pending payout. The
// transfer itself runs in the payout worker. Concurrent requests of the same
// explorer are serialized by the user row lock.
func (s *service) Request(ctx context.Context, explorer domain.UserID, amount int64) (*domain.Payout, error) {
	if amount < s.options.MinAmount {
		return nil, serrors.With(serrors.ErrBadRequest, "payouts start at %s", money.Format(s.options.MinAmount, s.options.Currency))
	}

	var payout *domain.Payout
	err := s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.LockUser(ctx, explorer); err != nil {
			return fmt.Errorf("could not lock user: %w", err)
		}
		user, err := tx.UserByID(ctx, explorer)
		if err != nil {
			return fmt.Errorf("could not get user: %w", err)
		}
		if user == nil || !user.PayoutsEnabled || user.StripeAccountID == "" {
			return serrors.With(serrors.ErrBadRequest, "payouts are not enabled for this account")
		}

		b, err := balance(ctx, tx, explorer, s.options.Currency)
		if err != nil {
			return err
		}
		if amount > b.Available() {
			return serrors.With(serrors.ErrBadRequest, "insufficient balance: %s available",
				money.Format(b.Available(), b.Currency))
		}

		payout, err = tx.CreatePayout(ctx, domain.Payout{
			ExplorerID: explorer,
			Amount:     amount,
			Currency:   s.options.Currency,
			Status:     domain.PayoutPending,
		})
		if err != nil {
			return fmt.Errorf("could not store payout: %w", err)
		}

		return s.Emitter.PayoutRequested(ctx, tx, payout.ID)
	})
	if err != nil {
		return nil, err
	}
	metrics.PayoutRequested(ctx)

	return payout, nil
}

func (s *service) List(ctx context.Context, explorer domain.UserID, cursor string, limit uint) ([]domain.Payout, string, error) {
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}
	page, err := s.Storage.Payouts(ctx, explorer, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list payouts: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

// HandleEvent mirrors the onboarding state of connected accounts.
func (s *service) HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error {
	if event.Type != payments.EventAccountUpdated {
		return nil
	}
	user, err := tx.UserByStripeAccount(ctx, event.ObjectID)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || user.PayoutsEnabled == event.PayoutsEnabled {
		return nil
	}

	enabled := event.PayoutsEnabled
	if _, err := tx.UpdateUser(ctx, user.ID, storage.UserUpdates{PayoutsEnabled: &enabled}); err != nil {
		return fmt.Errorf("could not update user: %w", err)
	}
	logger.Info(ctx, "payouts toggled", zap.Stringer("userID", user.ID), zap.Bool("enabled", enabled))

	return nil
}

func New(deps Deps, options Options) Service {
	if options.Currency == "" {
		options.Currency = "usd"
	}

	return &service{options: options, Deps: deps}
}
