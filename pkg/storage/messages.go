package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// MessageStore persists chat messages. A message is created once and is
// immutable thereafter. Reads are classified as privileged or not: the
// non-privileged path must never return the raw text.
type MessageStore interface {
	CreateMessage(ctx context.Context, msg *models.ChatMessage) (*models.ChatMessage, error)

	// ListMessages returns a conversation with OriginalMessage cleared; only
	// the filtered text is exposed to the counterparty.
	ListMessages(ctx context.Context, listingID string) ([]models.ChatMessage, error)

	// ListMessagesPrivileged returns the conversation including the raw text,
	// for moderation review only.
	ListMessagesPrivileged(ctx context.Context, listingID string) ([]models.ChatMessage, error)
}
