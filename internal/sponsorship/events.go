package sponsorship

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"journal/pkg/metrics"
	"journal/pkg/money"
	"journal/pkg/payments"
	"journal/pkg/storage"

	"go.uber.org/zap"
)

// HandleEvent applies provider payment events to sponsorships. Events about
// objects that are not sponsorships are ignored.
func (s *service) HandleEvent(ctx context.Context, tx storage.AllStorage, event payments.Event) error {
	switch event.Type {
	case payments.EventPaymentSucceeded:
		sp, err := tx.SponsorshipByPaymentIntent(ctx, event.ObjectID)
		if err != nil || sp == nil || sp.Status == domain.SponsorshipConfirmed {
			return wrapLookup(err)
		}

		return s.charged(ctx, tx, *sp, storage.SponsorshipUpdates{})
	case payments.EventPaymentFailed:
		sp, err := tx.SponsorshipByPaymentIntent(ctx, event.ObjectID)
		if err != nil || sp == nil || sp.Status != domain.SponsorshipPending {
			return wrapLookup(err)
		}
		logger.Info(ctx, "sponsorship payment failed",
			zap.Stringer("sponsorshipID", sp.ID), zap.String("reason", event.FailureMessage))

		return s.setStatus(ctx, tx, sp.ID, domain.SponsorshipFailed)
	case payments.EventInvoicePaid:
		sp, err := tx.SponsorshipBySubscription(ctx, event.SubscriptionID)
		if err != nil || sp == nil {
			return wrapLookup(err)
		}
		updates := storage.SponsorshipUpdates{}
		if !event.PeriodEnd.IsZero() {
			updates.CurrentPeriodEnd = &event.PeriodEnd
		}

		return s.charged(ctx, tx, *sp, updates)
	case payments.EventSubscriptionDeleted:
		sp, err := tx.SponsorshipBySubscription(ctx, event.SubscriptionID)
		if err != nil || sp == nil || sp.Status == domain.SponsorshipCanceled {
			return wrapLookup(err)
		}

		return s.setStatus(ctx, tx, sp.ID, domain.SponsorshipCanceled)
	}

	return nil
}

func wrapLookup(err error) error {
	if err != nil {
		return fmt.Errorf("could not get sponsorship: %w", err)
	}

	return nil
}

func (s *service) setStatus(ctx context.Context, tx storage.AllStorage, id domain.SponsorshipID, status domain.SponsorshipStatus) error {
	if _, err := tx.UpdateSponsorship(ctx, id, storage.SponsorshipUpdates{Status: &status}); err != nil {
		return fmt.Errorf("could not update sponsorship: %w", err)
	}

	return nil
}

// charged records one collected charge and tells the explorer about it. A
// canceled subscription keeps its status but the charge is still credited.
func (s *service) charged(ctx context.Context, tx storage.AllStorage, sp domain.Sponsorship, updates storage.SponsorshipUpdates) error {
	updates.IncrementPaid = true
	if sp.Status != domain.SponsorshipCanceled {
		status := domain.SponsorshipConfirmed
		updates.Status = &status
	}
	if _, err := tx.UpdateSponsorship(ctx, sp.ID, updates); err != nil {
		return fmt.Errorf("could not update sponsorship: %w", err)
	}

	if err := s.Emitter.Notify(ctx, tx, domain.Notification{
		UserID:        sp.ExplorerID,
		ActorID:       &sp.SponsorID,
		Kind:          domain.NotificationSponsorship,
		SponsorshipID: &sp.ID,
	}); err != nil {
		return err
	}

	explorer, err := tx.UserByID(ctx, sp.ExplorerID)
	if err != nil {
		return fmt.Errorf("could not get explorer: %w", err)
	}
	sponsor, err := tx.UserByID(ctx, sp.SponsorID)
	if err != nil {
		return fmt.Errorf("could not get sponsor: %w", err)
	}
	if explorer != nil {
		name := "Someone"
		if sponsor != nil {
			name = "@" + sponsor.Username
		}
		if err := s.Emitter.Email(ctx, tx, explorer.Email, mailer.TemplateSponsorshipReceived, map[string]string{
			"username": explorer.Username,
			"sponsor":  name,
			"amount":   money.Format(sp.Amount, sp.Currency),
			"message":  sp.Message,
		}); err != nil {
			return err
		}
	}

	metrics.SponsorshipConfirmed(ctx, string(sp.Type))
	logger.Info(ctx, "sponsorship charge collected",
		zap.Stringer("sponsorshipID", sp.ID), zap.Int64("amount", sp.Amount))

	return nil
}
