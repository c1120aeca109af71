package moderation

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testAccessKey = "test-access-key"

// adminRequest builds a request carrying the kind and id route parameters and
// the shared moderator access key.
func adminRequest(method, kind, id string, body []byte) *http.Request {
	req := httptest.NewRequest(method, "/admin/"+kind+"/"+id+"/approve", bytes.NewReader(body))
	req.Header.Set(auth.AccessKeyHeader, testAccessKey)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("kind", kind)
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// serveModerated runs a handler behind moderator verification, the way the
// router mounts it.
func serveModerated(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	verifier := auth.StaticKeyVerifier{Key: testAccessKey}
	auth.RequireModerator(verifier)(h).ServeHTTP(rr, req)
	return rr
}

func TestApprove(t *testing.T) {
	t.Run("Provider Verification", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("Approve", mock.Anything, models.KindProvider, "provider-1", "platform").Return(nil)

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Approve, adminRequest(http.MethodPost, "providers", "provider-1", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Kind", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Approve, adminRequest(http.MethodPost, "boats", "boat-1", nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		mockStorage.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Access Key", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewModerationHandler(mockStorage)

		req := adminRequest(http.MethodPost, "providers", "provider-1", nil)
		req.Header.Del(auth.AccessKeyHeader)

		// Act
		rr := serveModerated(h.Approve, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Entity", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("Approve", mock.Anything, models.KindRental, "missing", "platform").Return(&models.NotFoundError{
			Kind: "rental", ID: "missing",
		})

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Approve, adminRequest(http.MethodPost, "rentals", "missing", nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Terminal State Is A Conflict", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("Approve", mock.Anything, models.KindPropertySale, "sale-1", "platform").Return(&models.InvalidStateError{
			Current:   string(models.ApprovalSold),
			Attempted: string(models.ApprovalApproved),
		})

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Approve, adminRequest(http.MethodPost, "property-sales", "sale-1", nil))

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestReject(t *testing.T) {
	t.Run("With Reason", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("Reject", mock.Anything, models.KindRental, "rental-1", "platform", "photos floues").Return(nil)

		h := NewModerationHandler(mockStorage)
		body := []byte(`{"reason": "photos floues"}`)

		// Act
		rr := serveModerated(h.Reject, adminRequest(http.MethodPost, "rentals", "rental-1", body))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Empty Body Uses Default Reason Downstream", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("Reject", mock.Anything, models.KindProvider, "provider-1", "platform", "").Return(nil)

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Reject, adminRequest(http.MethodPost, "providers", "provider-1", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Bad Request - Invalid JSON", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.Reject, adminRequest(http.MethodPost, "providers", "provider-1", []byte("not-json")))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "Reject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMarkSold(t *testing.T) {
	t.Run("Approved Sale", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("MarkSold", mock.Anything, models.KindVehicleSale, "sale-1").Return(nil)

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.MarkSold, adminRequest(http.MethodPost, "vehicle-sales", "sale-1", nil))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Rentals Never Sell", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.MarkSold, adminRequest(http.MethodPost, "rentals", "rental-1", nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Only sale listings can be marked sold")
		mockStorage.AssertNotCalled(t, "MarkSold", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Pending Sale Is A Conflict", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("MarkSold", mock.Anything, models.KindPropertySale, "sale-1").Return(&models.InvalidStateError{
			Current:   string(models.ApprovalPending),
			Attempted: string(models.ApprovalSold),
			Reason:    "only an approved listing can be marked sold",
		})

		h := NewModerationHandler(mockStorage)

		// Act
		rr := serveModerated(h.MarkSold, adminRequest(http.MethodPost, "property-sales", "sale-1", nil))

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
