// Package message implements direct messages sent by Explorer Pro members.
package message

import (
	"context"
	"fmt"
	"journal/internal/events"
	"journal/pkg/domain"
	"journal/pkg/sanitize"
	"journal/pkg/serrors"
	"journal/pkg/storage"
	"strings"
	"unicode/utf8"
)

const maxBodyLength = 2000

type Deps struct {
	Storage storage.Storage
	Emitter *events.Emitter
}

type service struct {
	Deps
}

func (s *service) Send(ctx context.Context, sender domain.Principal, recipient, body string) (*domain.Message, error) {
	if !sender.IsPro() {
		return nil, serrors.With(serrors.ErrPaymentRequired, "messaging requires Explorer Pro")
	}
	body = strings.TrimSpace(sanitize.Text(body))
	if n := utf8.RuneCountInString(body); n == 0 || n > maxBodyLength {
		return nil, serrors.With(serrors.ErrBadRequest, "message must be 1 to %d characters", maxBodyLength)
	}

	to, err := s.Storage.UserByUsername(ctx, recipient)
	if err != nil {
		return nil, fmt.Errorf("could not get recipient: %w", err)
	}
	if to == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %q not found", recipient)
	}
	if to.ID == sender.UserID {
		return nil, serrors.With(serrors.ErrBadRequest, "you cannot message yourself")
	}

	var msg *domain.Message
	err = s.Storage.WithTx(ctx, func(tx storage.AllStorage) error {
		msg, err = tx.CreateMessage(ctx, domain.Message{SenderID: sender.UserID, RecipientID: to.ID, Body: body})
		if err != nil {
			return fmt.Errorf("could not store message: %w", err)
		}

		return s.Emitter.Notify(ctx, tx, domain.Notification{
			UserID:  to.ID,
			ActorID: &sender.UserID,
			Kind:    domain.NotificationMessage,
		})
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *service) Conversation(ctx context.Context, user domain.UserID, other, cursor string, limit uint) ([]domain.Message, string, error) {
	peer, err := s.Storage.UserByUsername(ctx, other)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user: %w", err)
	}
	if peer == nil {
		return nil, "", serrors.With(serrors.ErrNotFound, "user %q not found", other)
	}
	cursorTime, err := storage.ParseCursor(cursor)
	if err != nil {
		return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	page, err := s.Storage.Conversation(ctx, user, peer.ID, cursorTime, storage.PageSize(limit))
	if err != nil {
		return nil, "", fmt.Errorf("could not list messages: %w", err)
	}
	if _, err := s.Storage.MarkConversationRead(ctx, user, peer.ID); err != nil {
		return nil, "", fmt.Errorf("could not mark messages read: %w", err)
	}

	return page.Items, page.Cursor(), nil
}

func New(deps Deps) Service {
	return &service{Deps: deps}
}
