package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID          MessageID
	SenderID    UserID
	RecipientID UserID
	Body        string
	IsRead      bool
	CreatedAt   time.Time
}
