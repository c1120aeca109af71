// Package revenue serves the commission report and the admin dashboard
// summary. Both routes sit behind moderator verification.
package revenue

import (
	"net/http"
	"strconv"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/settlement"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// RevenueHandler holds the dependencies for revenue-related handlers.
type RevenueHandler struct {
	Engine   *settlement.Engine
	Accounts storage.AccountStore
	Jobs     storage.JobStore
	Listings storage.ListingReader
}

// NewRevenueHandler creates a new RevenueHandler.
func NewRevenueHandler(engine *settlement.Engine, accounts storage.AccountStore, jobs storage.JobStore, listings storage.ListingReader) *RevenueHandler {
	return &RevenueHandler{Engine: engine, Accounts: accounts, Jobs: jobs, Listings: listings}
}

// GetReport computes the commission report over a trailing window. The
// window defaults to 30 days and can be overridden with ?window_days=N.
func (h *RevenueHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	windowDays := settlement.DefaultWindowDays
	if v := r.URL.Query().Get("window_days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			http.Error(w, "window_days must be a positive integer", http.StatusBadRequest)
			return
		}
		windowDays = parsed
	}

	report, err := h.Engine.Report(r.Context(), windowDays)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, report)
}

// GetStats returns the counts per collection shown on the admin dashboard:
// providers broken down by verification status, the job pipeline by status,
// and totals for customers and rentals.
func (h *RevenueHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	providers, err := h.Accounts.ListProviders(ctx)
	if err != nil {
		respond.Error(w, err)
		return
	}
	allJobs, err := h.Jobs.ListJobs(ctx)
	if err != nil {
		respond.Error(w, err)
		return
	}
	customers, err := h.Accounts.ListCustomers(ctx)
	if err != nil {
		respond.Error(w, err)
		return
	}
	rentals, err := h.Listings.ListRentals(ctx)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var stats api.PlatformStats
	stats.TotalProviders = len(providers)
	for i := range providers {
		switch providers[i].VerificationStatus {
		case models.VerificationPending:
			stats.PendingProviders++
		case models.VerificationApproved:
			stats.ApprovedProviders++
		}
		if providers[i].IsOnline {
			stats.OnlineProviders++
		}
	}

	stats.TotalJobs = len(allJobs)
	for i := range allJobs {
		switch allJobs[i].Status {
		case models.JobPending:
			stats.PendingJobs++
		case models.JobAccepted:
			stats.AcceptedJobs++
		case models.JobCompleted:
			stats.CompletedJobs++
		}
	}

	stats.TotalCustomers = len(customers)
	stats.TotalRentals = len(rentals)

	respond.JSON(w, http.StatusOK, stats)
}
