package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// ModerationStore applies moderation decisions to any moderated entity kind.
// Every transition is an atomic conditional update on the record's current
// status: a transition attempted against a stale precondition fails with
// *models.InvalidStateError instead of silently overwriting.
type ModerationStore interface {
	// Approve transitions the record to approved. Allowed from pending,
	// rejected and (idempotently) approved; last writer wins on approved_by.
	Approve(ctx context.Context, kind models.ModeratedKind, id, moderatorID string) error

	// Reject transitions the record to rejected, recording reason.
	Reject(ctx context.Context, kind models.ModeratedKind, id, moderatorID, reason string) error

	// MarkSold transitions a sale listing from approved to the terminal sold
	// state.
	MarkSold(ctx context.Context, kind models.ModeratedKind, id string) error
}
