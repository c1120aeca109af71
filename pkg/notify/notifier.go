// Package notify publishes fire-and-forget events toward the notification
// collaborator. Delivery failure never rolls back the state transition that
// produced the event.
package notify

import (
	"context"
	"time"
)

// EventType names a notification event.
type EventType string

const (
	EventVerificationApproved EventType = "verification_approved"
	EventVerificationRejected EventType = "verification_rejected"
	EventListingApproved      EventType = "listing_approved"
	EventListingRejected      EventType = "listing_rejected"
	EventJobCompleted         EventType = "job_completed"
)

// Event is one notification toward an actor.
type Event struct {
	Type        EventType `json:"type"`
	RecipientID string    `json:"recipient_id"`
	EntityKind  string    `json:"entity_kind"`
	EntityID    string    `json:"entity_id"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Notifier defines the interface for publishing a notification event.
type Notifier interface {
	// Publish enqueues the event for asynchronous delivery.
	Publish(ctx context.Context, event Event) error
}
