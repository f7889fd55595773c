package message

import (
	"context"
	"journal/pkg/domain"
)

//go:generate mockgen -package mockmessage -source=interface.go -destination=mock/mockmessage.go *
type Service interface {
	Send(ctx context.Context, sender domain.Principal, recipient, body string) (*domain.Message, error)
	// Conversation pages over the messages exchanged with other and marks the received ones read.
	Conversation(ctx context.Context, user domain.UserID, other, cursor string, limit uint) ([]domain.Message, string, error)
}
