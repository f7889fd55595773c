package account

import (
	"context"
	"fmt"
	"journal/pkg/domain"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

func (s *service) Me(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	user, err := s.Storage.UserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (s *service) userByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.Storage.UserByUsername(ctx, normalize(username))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %q not found", username)
	}

	return user, nil
}

// Profile returns the public profile of username. Counters only include
// content the viewer can see.
func (s *service) Profile(ctx context.Context, viewer domain.UserID, username string) (*domain.Profile, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	self := viewer == user.ID
	profile := domain.Profile{User: *user}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile.Followers, profile.Following, err = s.Storage.FollowCounts(gctx, user.ID)

		return err //nolint: wrapcheck
	})
	g.Go(func() error {
		var err error
		profile.Entries, err = s.Storage.CountEntries(gctx, user.ID, !self)

		return err //nolint: wrapcheck
	})
	g.Go(func() error {
		var err error
		profile.Expeditions, err = s.Storage.CountExpeditions(gctx, user.ID, !self)

		return err //nolint: wrapcheck
	})
	if viewer != (domain.UserID{}) && !self {
		g.Go(func() error {
			var err error
			profile.IsFollowing, err = s.Storage.IsFollowing(gctx, viewer, user.ID)

			return err //nolint: wrapcheck
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("could not load profile: %w", err)
	}

	return &profile, nil
}

func cleanField(value *string, field string, limit int) (*string, error) {
	if value == nil {
		return nil, nil
	}
	clean := strings.TrimSpace(sanitize.Text(*value))
	if tooLong(clean, limit) {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be at most %d characters", field, limit)
	}

	return &clean, nil
}

func cleanURL(value *string, field string) (*string, error) {
	if value == nil {
		return nil, nil
	}
	clean := strings.TrimSpace(*value)
	if clean != "" && !validURL(clean) {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be an http or https URL", field)
	}

	return &clean, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID domain.UserID, input ProfileInput) (*domain.User, error) {
	var (
		updates storage.UserUpdates
		err     error
	)
	if updates.Name, err = cleanField(input.Name, "name", maxNameLength); err != nil {
		return nil, err
	}
	if updates.Bio, err = cleanField(input.Bio, "bio", maxBioLength); err != nil {
		return nil, err
	}
	if updates.Location, err = cleanField(input.Location, "location", maxLocationLength); err != nil {
		return nil, err
	}
	if updates.AvatarURL, err = cleanURL(input.AvatarURL, "avatar URL"); err != nil {
		return nil, err
	}
	if updates.Website, err = cleanURL(input.Website, "website"); err != nil {
		return nil, err
	}

	user, err := s.Storage.UpdateUser(ctx, userID, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

// ChangePassword replaces the password and revokes every other session of the user.
func (s *service) ChangePassword(ctx context.Context, principal domain.Principal, current, next string) error {
	if !validPassword(next) {
		return serrors.With(serrors.ErrBadRequest,
			"password must be %d to %d characters", minPasswordLength, maxPasswordLength)
	}

	user, err := s.Me(ctx, principal.UserID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return serrors.With(serrors.ErrUnauthorized, "current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), s.options.BcryptCost)
	if err != nil {
		return fmt.Errorf("could not hash password: %w", err)
	}
	hashStr := string(hash)
	if _, err := s.Storage.UpdateUser(ctx, user.ID, storage.UserUpdates{PasswordHash: &hashStr}); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	if err := s.Sessions.DeleteUserSessions(ctx, user.ID, principal.SessionID); err != nil {
		return fmt.Errorf("could not revoke sessions: %w", err)
	}

	return nil
}
