// Package jobs serves the service-engagement lifecycle: booking, the
// provider's accept/reject decision and the two-phase completion handshake.
package jobs

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/mapping"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// JobsHandler holds the dependencies for job-related handlers.
type JobsHandler struct {
	Store storage.JobStore
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(store storage.JobStore) *JobsHandler {
	return &JobsHandler{Store: store}
}

// CreateJob books a service engagement with a provider. The job starts
// pending until the provider decides.
func (h *JobsHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req api.NewJob
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	created, err := h.Store.CreateJob(r.Context(), mapping.ToDomainNewJob(&req))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiJob(created))
}

// GetJob returns one job.
func (h *JobsHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.Store.GetJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiJob(job))
}

// ListMyJobs returns the authenticated provider's jobs, newest first.
func (h *JobsHandler) ListMyJobs(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok || identity.Role != auth.RoleProvider {
		respond.Error(w, &models.AuthorizationError{Reason: "provider account required"})
		return
	}

	domainJobs, err := h.Store.ListJobsByProvider(r.Context(), identity.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	sort.Slice(domainJobs, func(i, j int) bool {
		return domainJobs[i].CreatedAt.After(domainJobs[j].CreatedAt)
	})

	out := make([]*api.Job, len(domainJobs))
	for i := range domainJobs {
		out[i] = mapping.ToApiJob(&domainJobs[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListConfirmableJobs returns jobs a client could still act on.
func (h *JobsHandler) ListConfirmableJobs(w http.ResponseWriter, r *http.Request) {
	domainJobs, err := h.Store.ListConfirmableJobs(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Job, len(domainJobs))
	for i := range domainJobs {
		out[i] = mapping.ToApiJob(&domainJobs[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// Accept is the provider's acceptance of a pending job.
func (h *JobsHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.providerTransition(w, r, h.Store.AcceptJob)
}

// Reject is the provider's refusal of a pending or accepted job.
func (h *JobsHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.providerTransition(w, r, h.Store.RejectJob)
}

// Complete is the provider's completion assertion, the first half of the
// handshake.
func (h *JobsHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.providerTransition(w, r, h.Store.ProviderCompleteJob)
}

// Confirm is the client's confirmation, the second half of the handshake.
// It carries no caller-identity requirement.
func (h *JobsHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	job, err := h.Store.CustomerConfirmJob(r.Context(), chi.URLParam(r, "jobId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiJob(job))
}

type transitionFunc func(ctx context.Context, id, providerID string) (*models.Job, error)

func (h *JobsHandler) providerTransition(w http.ResponseWriter, r *http.Request, transition transitionFunc) {
	identity, ok := auth.FromContext(r.Context())
	if !ok || identity.Role != auth.RoleProvider {
		respond.Error(w, &models.AuthorizationError{Reason: "provider account required"})
		return
	}

	job, err := transition(r.Context(), chi.URLParam(r, "jobId"), identity.ID)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiJob(job))
}
