package sponsorship

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/money"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"
	"unicode/utf8"
)

const (
	maxTierTitleLength       = 100
	maxTierDescriptionLength = 1000
)

func (s *service) checkPrice(price int64) error {
	if price < s.options.MinAmount {
		return serrors.With(serrors.ErrBadRequest, "price must be at least %s",
			money.Format(s.options.MinAmount, s.options.Currency))
	}
	if price > money.MaxAmount {
		return serrors.With(serrors.ErrBadRequest, "price must be at most %s",
			money.Format(money.MaxAmount, s.options.Currency))
	}

	return nil
}

func cleanTier(title, description string) (string, string, error) {
	title = strings.TrimSpace(sanitize.Text(title))
	if title == "" || utf8.RuneCountInString(title) > maxTierTitleLength {
		return "", "", serrors.With(serrors.ErrBadRequest, "title must be 1 to %d characters", maxTierTitleLength)
	}
	description = strings.TrimSpace(sanitize.Text(description))
	if utf8.RuneCountInString(description) > maxTierDescriptionLength {
		return "", "", serrors.With(serrors.ErrBadRequest, "description must be at most %d characters", maxTierDescriptionLength)
	}

	return title, description, nil
}

func requirePro(principal domain.Principal) error {
	if !principal.IsPro() {
		return serrors.With(serrors.ErrPaymentRequired, "sponsorship tiers require Explorer Pro")
	}

	return nil
}

func (s *service) CreateTier(ctx context.Context, principal domain.Principal, input TierInput) (*domain.SponsorshipTier, error) {
	if err := requirePro(principal); err != nil {
		return nil, err
	}
	title, description, err := cleanTier(input.Title, input.Description)
	if err != nil {
		return nil, err
	}
	if err := s.checkPrice(input.Price); err != nil {
		return nil, err
	}
	if input.Interval == "" {
		input.Interval = domain.IntervalOneTime
	}
	if !input.Interval.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid interval %q", input.Interval)
	}

	tier, err := s.Storage.CreateTier(ctx, domain.SponsorshipTier{
		ExplorerID:  principal.UserID,
		Title:       title,
		Description: description,
		Price:       input.Price,
		Interval:    input.Interval,
		Active:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store tier: %w", err)
	}

	return tier, nil
}

func (s *service) UpdateTier(ctx context.Context, principal domain.Principal, id domain.TierID, input TierUpdateInput) (*domain.SponsorshipTier, error) {
	if err := requirePro(principal); err != nil {
		return nil, err
	}
	current, err := s.Storage.TierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get tier: %w", err)
	}
	if current == nil || current.ExplorerID != principal.UserID {
		return nil, serrors.With(serrors.ErrNotFound, "tier not found")
	}

	updates := storage.TierUpdates{Price: input.Price, Active: input.Active}
	title, description := current.Title, current.Description
	if input.Title != nil {
		title = *input.Title
	}
	if input.Description != nil {
		description = *input.Description
	}
	if title, description, err = cleanTier(title, description); err != nil {
		return nil, err
	}
	if input.Title != nil {
		updates.Title = &title
	}
	if input.Description != nil {
		updates.Description = &description
	}
	if input.Price != nil {
		if err := s.checkPrice(*input.Price); err != nil {
			return nil, err
		}
	}

	tier, err := s.Storage.UpdateTier(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update tier: %w", err)
	}
	if tier == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tier not found")
	}

	return tier, nil
}

func (s *service) DeleteTier(ctx context.Context, principal domain.Principal, id domain.TierID) error {
	if err := requirePro(principal); err != nil {
		return err
	}
	deleted, err := s.Storage.DeleteTier(ctx, principal.UserID, id)
	if err != nil {
		return fmt.Errorf("could not delete tier: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "tier not found")
	}

	return nil
}

// Tiers lists the explorer's tiers. Inactive tiers are shown to the explorer only.
func (s *service) Tiers(ctx context.Context, viewer domain.UserID, username string) ([]domain.SponsorshipTier, error) {
	explorer, err := s.Storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if explorer == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %q not found", username)
	}

	tiers, err := s.Storage.Tiers(ctx, explorer.ID, viewer != explorer.ID)
	if err != nil {
		return nil, fmt.Errorf("could not list tiers: %w", err)
	}

	return tiers, nil
}
