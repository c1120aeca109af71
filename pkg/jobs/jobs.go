// Package jobs implements the two-phase job completion handshake: the
// provider asserts completion and the client independently confirms it, so
// neither party can unilaterally close a job.
package jobs

import (
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
)

// Accept validates Pending -> Accepted.
func Accept(current models.JobStatus) (models.JobStatus, error) {
	if current != models.JobPending {
		return "", &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.JobAccepted),
			Reason:    "only a pending job can be accepted",
		}
	}
	return models.JobAccepted, nil
}

// Reject validates Pending|Accepted -> Rejected. Once the provider has
// asserted completion, rejection is no longer offered.
func Reject(current models.JobStatus) (models.JobStatus, error) {
	if current != models.JobPending && current != models.JobAccepted {
		return "", &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.JobRejected),
			Reason:    "the job can no longer be rejected",
		}
	}
	return models.JobRejected, nil
}

// ProviderComplete validates Accepted -> ProviderCompleted, the provider's
// half of the handshake.
func ProviderComplete(current models.JobStatus) (models.JobStatus, error) {
	if current != models.JobAccepted {
		return "", &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.JobProviderCompleted),
			Reason:    "job must be accepted before it can be marked complete",
		}
	}
	return models.JobProviderCompleted, nil
}

// CustomerConfirm validates ProviderCompleted -> Completed, the client's half
// of the handshake. Any caller may confirm; the route carries no identity
// check, matching the product's current behavior.
func CustomerConfirm(current models.JobStatus) (models.JobStatus, error) {
	if current != models.JobProviderCompleted {
		return "", &models.InvalidStateError{
			Current:   string(current),
			Attempted: string(models.JobCompleted),
			Reason:    "provider must mark the job complete first",
		}
	}
	return models.JobCompleted, nil
}

// IsTerminal reports whether no further transition is permitted.
func IsTerminal(s models.JobStatus) bool {
	return s == models.JobRejected || s == models.JobCompleted
}

// ReviewEligible reports whether a job is evidence of an engaged or finished
// relationship. Review submission for a provider requires at least one such
// job.
func ReviewEligible(s models.JobStatus) bool {
	return s == models.JobAccepted || s == models.JobCompleted
}
