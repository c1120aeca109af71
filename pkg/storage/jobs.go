package storage

import (
	"context"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// JobStore drives the two-phase completion handshake. Each transition method
// applies the handshake rules as an atomic conditional update on the current
// status and returns *models.InvalidStateError when the precondition is
// stale, *models.NotFoundError when the job does not exist.
type JobStore interface {
	CreateJob(ctx context.Context, job *models.Job) (*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobsByProvider(ctx context.Context, providerID string) ([]models.Job, error)

	// ListJobs returns every job regardless of status, for the admin
	// dashboard counts.
	ListJobs(ctx context.Context) ([]models.Job, error)

	// ListConfirmableJobs returns jobs a client could act on: accepted or
	// awaiting customer confirmation.
	ListConfirmableJobs(ctx context.Context) ([]models.Job, error)

	// AcceptJob and RejectJob are provider decisions on a pending job;
	// rejection is also allowed on an accepted job.
	AcceptJob(ctx context.Context, id, providerID string) (*models.Job, error)
	RejectJob(ctx context.Context, id, providerID string) (*models.Job, error)

	// ProviderCompleteJob is the provider's completion assertion; only the
	// assigned provider may call it.
	ProviderCompleteJob(ctx context.Context, id, providerID string) (*models.Job, error)

	// CustomerConfirmJob is the client's independent confirmation. It carries
	// no caller-identity check.
	CustomerConfirmJob(ctx context.Context, id string) (*models.Job, error)

	// HasReviewableJob reports whether the provider has at least one accepted
	// or completed job, the evidence required before a review is accepted.
	HasReviewableJob(ctx context.Context, providerID string) (bool, error)
}
