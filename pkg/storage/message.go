package storage

import (
	"context"
	"journal/pkg/domain"
	"time"
)

// MessageStorage persists direct messages.
type MessageStorage interface {
	CreateMessage(ctx context.Context, message domain.Message) (*domain.Message, error)
	// Conversation pages over messages exchanged between two users in either direction.
	Conversation(ctx context.Context, userID, otherID domain.UserID, cursor time.Time, limit uint) (Page[domain.Message], error)
	// MarkConversationRead marks messages sent by senderID to recipientID as read.
	MarkConversationRead(ctx context.Context, recipientID, senderID domain.UserID) (int64, error)
}

// WebhookStorage deduplicates provider webhook deliveries.
type WebhookStorage interface {
	// RecordWebhookEvent reports false when the event was already recorded.
	RecordWebhookEvent(ctx context.Context, id, eventType string) (bool, error)
}
