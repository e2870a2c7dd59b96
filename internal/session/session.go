package session

import (
	"context"
	"time"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps per-session conversation history. A session is an
// append-only list of messages that expires as a whole.
type Store interface {
	Append(ctx context.Context, id string, msgs ...Message) error
	History(ctx context.Context, id string) ([]Message, error)
	Clear(ctx context.Context, id string) error
}
