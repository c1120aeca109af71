// Package reviews serves provider reviews. A review is only accepted when
// the provider has handshake evidence: at least one accepted or completed
// job.
package reviews

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/mapping"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ReviewsHandler holds the dependencies for review-related handlers.
type ReviewsHandler struct {
	Store storage.ReviewStore
	Jobs  storage.JobStore
}

// NewReviewsHandler creates a new ReviewsHandler.
func NewReviewsHandler(store storage.ReviewStore, jobs storage.JobStore) *ReviewsHandler {
	return &ReviewsHandler{Store: store, Jobs: jobs}
}

// CreateReview records customer feedback on a provider.
func (h *ReviewsHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	providerID := chi.URLParam(r, "providerId")

	var req api.NewReview
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	eligible, err := h.Jobs.HasReviewableJob(r.Context(), providerID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if !eligible {
		http.Error(w, "Provider has no reviewable job yet", http.StatusUnprocessableEntity)
		return
	}

	created, err := h.Store.CreateReview(r.Context(), mapping.ToDomainNewReview(&req, providerID))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiReview(created))
}

// ListProviderReviews returns a provider's reviews.
func (h *ReviewsHandler) ListProviderReviews(w http.ResponseWriter, r *http.Request) {
	domainReviews, err := h.Store.ListReviewsByProvider(r.Context(), chi.URLParam(r, "providerId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Review, len(domainReviews))
	for i := range domainReviews {
		out[i] = mapping.ToApiReview(&domainReviews[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetProviderReviewStats returns the aggregate rating for a provider: total
// count, the average rounded to one decimal, and a per-star distribution. A
// provider with no reviews gets zeroes, not an error.
func (h *ReviewsHandler) GetProviderReviewStats(w http.ResponseWriter, r *http.Request) {
	domainReviews, err := h.Store.ListReviewsByProvider(r.Context(), chi.URLParam(r, "providerId"))
	if err != nil {
		respond.Error(w, err)
		return
	}

	stats := api.ReviewStats{RatingDistribution: make(map[string]int, 5)}
	for star := 1; star <= 5; star++ {
		stats.RatingDistribution[strconv.Itoa(star)] = 0
	}

	var sum int
	for i := range domainReviews {
		rating := domainReviews[i].Rating
		sum += rating
		stats.RatingDistribution[strconv.Itoa(rating)]++
	}
	stats.TotalReviews = len(domainReviews)
	if stats.TotalReviews > 0 {
		average := float64(sum) / float64(stats.TotalReviews)
		stats.AverageRating = math.Round(average*10) / 10
	}

	respond.JSON(w, http.StatusOK, stats)
}
