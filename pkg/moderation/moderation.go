// Package moderation implements the shared approve/reject state machine that
// gates public visibility of verifiable actors and listings. The same rules
// apply to providers, companies, rentals, property sales and vehicle sales;
// the sale kinds add the terminal "sold" state.
package moderation

import (
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// DefaultRejectionReason is recorded when a moderator rejects without giving
// a reason. The wording is user-visible and matches the platform's policy
// message.
const DefaultRejectionReason = "Non conforme à la politique de la plateforme"

// Decision is a validated status change ready to be applied as a conditional
// update keyed on AllowedFrom.
type Decision struct {
	To          models.ApprovalStatus
	AllowedFrom []models.ApprovalStatus
	ModeratorID string
	Reason      string
	At          time.Time
}

// Submit returns the initial moderation state for a newly created record.
// Submission always succeeds; any prior rejection reason is cleared.
func Submit() models.ApprovalStatus {
	return models.ApprovalPending
}

// Approve validates a moderator approval. Approval is allowed from pending,
// from rejected (re-review after correction) and, idempotently, from approved
// itself: two moderators approving concurrently both succeed and the last
// writer wins on approved_by.
func Approve(current models.ApprovalStatus, moderatorID string, now time.Time) (Decision, error) {
	switch current {
	case models.ApprovalPending, models.ApprovalRejected, models.ApprovalApproved:
		return Decision{
			To:          models.ApprovalApproved,
			AllowedFrom: []models.ApprovalStatus{models.ApprovalPending, models.ApprovalRejected, models.ApprovalApproved},
			ModeratorID: moderatorID,
			At:          now,
		}, nil
	default:
		return Decision{}, &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.ApprovalApproved),
			Reason:    "a sold listing can no longer be moderated",
		}
	}
}

// Reject validates a moderator rejection. Rejection is allowed from pending
// and from approved (a moderator may revoke visibility at any moment). An
// empty reason falls back to DefaultRejectionReason.
func Reject(current models.ApprovalStatus, moderatorID, reason string, now time.Time) (Decision, error) {
	if current != models.ApprovalPending && current != models.ApprovalApproved {
		return Decision{}, &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.ApprovalRejected),
		}
	}
	if reason == "" {
		reason = DefaultRejectionReason
	}
	return Decision{
		To:          models.ApprovalRejected,
		AllowedFrom: []models.ApprovalStatus{models.ApprovalPending, models.ApprovalApproved},
		ModeratorID: moderatorID,
		Reason:      reason,
		At:          now,
	}, nil
}

// MarkSold validates the one-way approved -> sold transition triggered by a
// sale completion. A pending or rejected listing cannot be sold.
func MarkSold(current models.ApprovalStatus, now time.Time) (Decision, error) {
	if current != models.ApprovalApproved {
		return Decision{}, &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.ApprovalSold),
			Reason:    "only an approved listing can be marked sold",
		}
	}
	return Decision{
		To:          models.ApprovalSold,
		AllowedFrom: []models.ApprovalStatus{models.ApprovalApproved},
		At:          now,
	}, nil
}

// IsPubliclyVisible is the single gate every public list, search and detail
// operation applies. It must be evaluated at query time, never cached, since
// moderation can revoke visibility at any moment.
func IsPubliclyVisible(status models.ApprovalStatus) bool {
	return status == models.ApprovalApproved
}

// ActorVisible is IsPubliclyVisible for the actor-side status enum.
func ActorVisible(status models.VerificationStatus) bool {
	return status == models.VerificationApproved
}
