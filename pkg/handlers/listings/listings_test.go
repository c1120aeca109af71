package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTokens = auth.NewService("test-secret")

// listingRequest builds a request carrying the listingId route parameter and,
// when an identity is given, a valid session token.
func listingRequest(t *testing.T, method, path, listingID string, identity *auth.Identity, body []byte) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rctx := chi.NewRouteContext()
	if listingID != "" {
		rctx.URLParams.Add("listingId", listingID)
	}
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	if identity != nil {
		token, err := testTokens.IssueToken(*identity)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// servePublic runs a handler behind the optional-session middleware, the way
// the router mounts public listing routes.
func servePublic(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	auth.OptionalUser(testTokens)(h).ServeHTTP(rr, req)
	return rr
}

// serveAuthed runs a handler behind the required-session middleware.
func serveAuthed(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	auth.RequireUser(testTokens)(h).ServeHTTP(rr, req)
	return rr
}

func pendingRental(ownerID string) *models.RentalListing {
	return &models.RentalListing{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       "Studio meublé à Kaloum",
		RentalPrice: 1_500_000,
		RentalType:  models.RentalLongTerm,
		IsAvailable: true,
		Status:      models.ApprovalPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestCreateRental(t *testing.T) {
	owner := &auth.Identity{ID: "company-1", Role: auth.RoleCompany}
	newRental := api.NewRental{
		Title:        "Studio meublé à Kaloum",
		PropertyType: "studio",
		Location:     "Conakry",
		RentalPrice:  1_500_000,
		RentalType:   "long_term",
	}

	t.Run("Enters Moderation Queue", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateRental", mock.Anything, mock.MatchedBy(func(l *models.RentalListing) bool {
			return l.OwnerID == owner.ID && l.IsAvailable
		})).Return(pendingRental(owner.ID), nil)

		h := NewListingsHandler(mockStorage)

		body, _ := json.Marshal(newRental)

		// Act
		rr := serveAuthed(h.CreateRental, listingRequest(t, http.MethodPost, "/rentals", "", owner, body))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Rental
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.ApprovalStatus(models.ApprovalPending), returned.Status)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Unknown Rental Type", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewListingsHandler(mockStorage)

		bad := newRental
		bad.RentalType = "weekly"
		body, _ := json.Marshal(bad)

		// Act
		rr := serveAuthed(h.CreateRental, listingRequest(t, http.MethodPost, "/rentals", "", owner, body))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateRental", mock.Anything, mock.Anything)
	})

	t.Run("Missing Token", func(t *testing.T) {
		// Arrange
		h := NewListingsHandler(new(mocks.Storage))
		body, _ := json.Marshal(newRental)

		// Act
		rr := serveAuthed(h.CreateRental, listingRequest(t, http.MethodPost, "/rentals", "", nil, body))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetRental(t *testing.T) {
	owner := &auth.Identity{ID: "company-1", Role: auth.RoleCompany}

	t.Run("Approved Is Public", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)
		listing.Status = models.ApprovalApproved

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.GetRental, listingRequest(t, http.MethodGet, "/rentals/"+listing.ID, listing.ID, nil, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Pending Hidden From Strangers", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.GetRental, listingRequest(t, http.MethodGet, "/rentals/"+listing.ID, listing.ID, nil, nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Pending Visible To Its Owner", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.GetRental, listingRequest(t, http.MethodGet, "/rentals/"+listing.ID, listing.ID, owner, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Pending Hidden From Other Accounts", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)
		other := &auth.Identity{ID: "company-2", Role: auth.RoleCompany}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.GetRental, listingRequest(t, http.MethodGet, "/rentals/"+listing.ID, listing.ID, other, nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetPropertySale(t *testing.T) {
	t.Run("Sold Stays Public", func(t *testing.T) {
		// Arrange
		soldAt := time.Now()
		sale := &models.PropertySale{
			ID:      uuid.NewString(),
			OwnerID: "company-1",
			Price:   10_000_000,
			Status:  models.ApprovalSold,
			SoldAt:  &soldAt,
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetPropertySale", mock.Anything, sale.ID).Return(sale, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.GetPropertySale, listingRequest(t, http.MethodGet, "/property-sales/"+sale.ID, sale.ID, nil, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returned api.PropertySale
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.ApprovalStatus(models.ApprovalSold), returned.Status)
	})
}

func TestListRentals(t *testing.T) {
	t.Run("Rental Type Filter", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListPublicRentals", mock.Anything, mock.MatchedBy(func(f storage.RentalFilter) bool {
			return f.RentalType != nil && *f.RentalType == models.RentalShortTerm && f.IsAvailable == nil
		})).Return([]models.RentalListing{}, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.ListRentals, listingRequest(t, http.MethodGet, "/rentals?rental_type=short_term", "", nil, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Invalid Rental Type Filter", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.ListRentals, listingRequest(t, http.MethodGet, "/rentals?rental_type=weekly", "", nil, nil))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "ListPublicRentals", mock.Anything, mock.Anything)
	})

	t.Run("Availability Filter", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("ListPublicRentals", mock.Anything, mock.MatchedBy(func(f storage.RentalFilter) bool {
			return f.IsAvailable != nil && *f.IsAvailable
		})).Return([]models.RentalListing{}, nil)

		h := NewListingsHandler(mockStorage)

		// Act
		rr := servePublic(h.ListRentals, listingRequest(t, http.MethodGet, "/rentals?available=true", "", nil, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
		mockStorage.AssertExpectations(t)
	})
}

func TestSetAvailability(t *testing.T) {
	owner := &auth.Identity{ID: "company-1", Role: auth.RoleCompany}

	t.Run("Owner Toggles Availability", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)
		listing.Status = models.ApprovalApproved

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)
		mockStorage.On("SetRentalAvailability", mock.Anything, listing.ID, false).Return(nil)

		h := NewListingsHandler(mockStorage)

		body, _ := json.Marshal(api.AvailabilityUpdate{IsAvailable: false})

		// Act
		rr := serveAuthed(h.SetAvailability, listingRequest(t, http.MethodPut, "/rentals/"+listing.ID+"/availability", listing.ID, owner, body))

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Non-Owner Rejected", func(t *testing.T) {
		// Arrange
		listing := pendingRental(owner.ID)
		other := &auth.Identity{ID: "company-2", Role: auth.RoleCompany}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetRental", mock.Anything, listing.ID).Return(listing, nil)

		h := NewListingsHandler(mockStorage)

		body, _ := json.Marshal(api.AvailabilityUpdate{IsAvailable: false})

		// Act
		rr := serveAuthed(h.SetAvailability, listingRequest(t, http.MethodPut, "/rentals/"+listing.ID+"/availability", listing.ID, other, body))

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "only the owner may update availability")
		mockStorage.AssertNotCalled(t, "SetRentalAvailability", mock.Anything, mock.Anything, mock.Anything)
	})
}
