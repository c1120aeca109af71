package reviews

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func providerRequest(method, providerID string, body []byte) *http.Request {
	req := httptest.NewRequest(method, "/providers/"+providerID+"/reviews", bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("providerId", providerID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateReview(t *testing.T) {
	providerID := uuid.NewString()
	newReview := api.NewReview{
		CustomerName: "Fatoumata Camara",
		Rating:       5,
		Comment:      "Travail soigné",
	}

	t.Run("Accepted With Handshake Evidence", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("HasReviewableJob", mock.Anything, providerID).Return(true, nil)
		mockStorage.On("CreateReview", mock.Anything, mock.MatchedBy(func(rev *models.Review) bool {
			return rev.ProviderID == providerID && rev.Rating == 5
		})).Return(&models.Review{
			ID:           uuid.NewString(),
			ProviderID:   providerID,
			CustomerName: newReview.CustomerName,
			Rating:       newReview.Rating,
			Comment:      newReview.Comment,
			CreatedAt:    time.Now(),
		}, nil)

		h := NewReviewsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(newReview)
		rr := httptest.NewRecorder()

		// Act
		h.CreateReview(rr, providerRequest(http.MethodPost, providerID, body))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Review
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, 5, returned.Rating)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Rejected Without Handshake Evidence", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("HasReviewableJob", mock.Anything, providerID).Return(false, nil)

		h := NewReviewsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(newReview)
		rr := httptest.NewRecorder()

		// Act
		h.CreateReview(rr, providerRequest(http.MethodPost, providerID, body))

		// Assert
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), "Provider has no reviewable job yet")
		mockStorage.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything)
	})

	t.Run("Rating Out Of Range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			// Arrange
			mockStorage := new(mocks.Storage)
			h := NewReviewsHandler(mockStorage, mockStorage)

			bad := newReview
			bad.Rating = rating
			body, _ := json.Marshal(bad)
			rr := httptest.NewRecorder()

			// Act
			h.CreateReview(rr, providerRequest(http.MethodPost, providerID, body))

			// Assert
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			mockStorage.AssertNotCalled(t, "HasReviewableJob", mock.Anything, mock.Anything)
		}
	})

	t.Run("Eligibility Check Failure", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("HasReviewableJob", mock.Anything, providerID).Return(false, assert.AnError)

		h := NewReviewsHandler(mockStorage, mockStorage)

		body, _ := json.Marshal(newReview)
		rr := httptest.NewRecorder()

		// Act
		h.CreateReview(rr, providerRequest(http.MethodPost, providerID, body))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestListProviderReviews(t *testing.T) {
	providerID := uuid.NewString()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListReviewsByProvider", mock.Anything, providerID).Return([]models.Review{
			{ID: uuid.NewString(), ProviderID: providerID, Rating: 4, CreatedAt: time.Now()},
		}, nil)

		h := NewReviewsHandler(mockStorage, mockStorage)
		rr := httptest.NewRecorder()

		// Act
		h.ListProviderReviews(rr, providerRequest(http.MethodGet, providerID, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returned []api.Review
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		require.Len(t, returned, 1)
		assert.Equal(t, 4, returned[0].Rating)
	})
}

func TestGetProviderReviewStats(t *testing.T) {
	providerID := uuid.NewString()

	t.Run("Aggregates Count, Average And Distribution", func(t *testing.T) {
		// Arrange
		stored := []models.Review{
			{ID: uuid.NewString(), ProviderID: providerID, Rating: 5},
			{ID: uuid.NewString(), ProviderID: providerID, Rating: 5},
			{ID: uuid.NewString(), ProviderID: providerID, Rating: 3},
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("ListReviewsByProvider", mock.Anything, providerID).Return(stored, nil)

		h := NewReviewsHandler(mockStorage, mockStorage)
		rr := httptest.NewRecorder()

		// Act
		h.GetProviderReviewStats(rr, providerRequest(http.MethodGet, providerID, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var stats api.ReviewStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Equal(t, 3, stats.TotalReviews)
		// (5+5+3)/3 rounded to one decimal.
		assert.Equal(t, 4.3, stats.AverageRating)
		assert.Equal(t, 2, stats.RatingDistribution["5"])
		assert.Equal(t, 1, stats.RatingDistribution["3"])
		assert.Equal(t, 0, stats.RatingDistribution["1"])
	})

	t.Run("No Reviews Yields Zeroes", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListReviewsByProvider", mock.Anything, providerID).Return([]models.Review{}, nil)

		h := NewReviewsHandler(mockStorage, mockStorage)
		rr := httptest.NewRecorder()

		// Act
		h.GetProviderReviewStats(rr, providerRequest(http.MethodGet, providerID, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var stats api.ReviewStats
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Zero(t, stats.TotalReviews)
		assert.Zero(t, stats.AverageRating)
		require.Len(t, stats.RatingDistribution, 5)
		for star, count := range stats.RatingDistribution {
			assert.Zero(t, count, "star bucket %s", star)
		}
	})

	t.Run("Storage Failure", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListReviewsByProvider", mock.Anything, providerID).Return(nil, assert.AnError)

		h := NewReviewsHandler(mockStorage, mockStorage)
		rr := httptest.NewRecorder()

		// Act
		h.GetProviderReviewStats(rr, providerRequest(http.MethodGet, providerID, nil))

		// Assert
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
