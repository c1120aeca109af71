package accounts

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

func TestRegisterProvider(t *testing.T) {
	newProvider := api.NewProvider{
		FirstName:   "Amadou",
		LastName:    "Barry",
		PhoneNumber: "620000001",
		Password:    "motdepasse",
		Profession:  "électricien",
		Location:    "Conakry",
	}

	t.Run("Starts Pending Verification", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateProvider", mock.Anything, mock.MatchedBy(func(p *models.ServiceProvider) bool {
			// The stored password must be a hash, never the plaintext.
			return p.PhoneNumber == newProvider.PhoneNumber && p.Password != newProvider.Password
		})).Return(&models.ServiceProvider{
			ID:                 uuid.NewString(),
			FirstName:          newProvider.FirstName,
			LastName:           newProvider.LastName,
			PhoneNumber:        newProvider.PhoneNumber,
			Profession:         newProvider.Profession,
			VerificationStatus: models.VerificationPending,
			CreatedAt:          time.Now(),
		}, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(newProvider)
		rr := httptest.NewRecorder()

		// Act
		h.RegisterProvider(rr, httptest.NewRequest(http.MethodPost, "/providers", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)

		var returned api.Provider
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, api.VerificationStatus(models.VerificationPending), returned.VerificationStatus)
		assert.NotContains(t, rr.Body.String(), "password")
		mockStorage.AssertExpectations(t)
	})

	t.Run("Weak Password Rejected", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewAccountsHandler(mockStorage, testTokens)

		weak := newProvider
		weak.Password = "court"
		body, _ := json.Marshal(weak)
		rr := httptest.NewRecorder()

		// Act
		h.RegisterProvider(rr, httptest.NewRequest(http.MethodPost, "/providers", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockStorage.AssertNotCalled(t, "CreateProvider", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Phone Number", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("CreateProvider", mock.Anything, mock.Anything).Return(nil, storage.ErrPhoneAlreadyRegistered)

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(newProvider)
		rr := httptest.NewRecorder()

		// Act
		h.RegisterProvider(rr, httptest.NewRequest(http.MethodPost, "/providers", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	password := "motdepasse"
	hash, err := testTokens.HashPassword(password)
	require.NoError(t, err)

	provider := &models.ServiceProvider{
		ID:          uuid.NewString(),
		PhoneNumber: "620000001",
		Password:    hash,
	}

	t.Run("Provider Login Issues A Session", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProviderByPhone", mock.Anything, provider.PhoneNumber).Return(provider, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(api.LoginRequest{PhoneNumber: provider.PhoneNumber, Password: password})
		rr := httptest.NewRecorder()

		// Act
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var session api.Session
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
		assert.Equal(t, string(auth.RoleProvider), session.Role)
		assert.Equal(t, provider.ID, session.Id)

		identity, err := testTokens.ParseToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, provider.ID, identity.ID)
	})

	t.Run("Customer Found After Earlier Collections Miss", func(t *testing.T) {
		// Arrange
		customer := &models.Customer{
			ID:          uuid.NewString(),
			PhoneNumber: "621000001",
			Password:    hash,
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProviderByPhone", mock.Anything, customer.PhoneNumber).Return(nil, &models.NotFoundError{Kind: "provider"})
		mockStorage.On("GetCompanyByPhone", mock.Anything, customer.PhoneNumber).Return(nil, &models.NotFoundError{Kind: "company"})
		mockStorage.On("GetCustomerByPhone", mock.Anything, customer.PhoneNumber).Return(customer, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(api.LoginRequest{PhoneNumber: customer.PhoneNumber, Password: password})
		rr := httptest.NewRecorder()

		// Act
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var session api.Session
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &session))
		assert.Equal(t, string(auth.RoleCustomer), session.Role)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProviderByPhone", mock.Anything, provider.PhoneNumber).Return(provider, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(api.LoginRequest{PhoneNumber: provider.PhoneNumber, Password: "mauvais-mdp"})
		rr := httptest.NewRecorder()

		// Act
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Phone Number", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProviderByPhone", mock.Anything, "699999999").Return(nil, &models.NotFoundError{Kind: "provider"})
		mockStorage.On("GetCompanyByPhone", mock.Anything, "699999999").Return(nil, &models.NotFoundError{Kind: "company"})
		mockStorage.On("GetCustomerByPhone", mock.Anything, "699999999").Return(nil, &models.NotFoundError{Kind: "customer"})
		mockStorage.On("GetAdminByPhone", mock.Anything, "699999999").Return(nil, &models.NotFoundError{Kind: "admin"})

		h := NewAccountsHandler(mockStorage, testTokens)

		body, _ := json.Marshal(api.LoginRequest{PhoneNumber: "699999999", Password: password})
		rr := httptest.NewRecorder()

		// Act
		h.Login(rr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))

		// Assert
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestSetOnline(t *testing.T) {
	provider := auth.Identity{ID: "provider-1", Role: auth.RoleProvider}

	t.Run("Provider Goes Online", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("SetProviderOnline", mock.Anything, provider.ID, true).Return(nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		token, err := testTokens.IssueToken(provider)
		require.NoError(t, err)

		body, _ := json.Marshal(api.OnlineUpdate{IsOnline: true})
		req := httptest.NewRequest(http.MethodPut, "/me/online", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		// Act
		auth.RequireUser(testTokens)(http.HandlerFunc(h.SetOnline)).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusNoContent, rr.Code)
		mockStorage.AssertExpectations(t)
	})

	t.Run("Customer Cannot Toggle", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		h := NewAccountsHandler(mockStorage, testTokens)

		token, err := testTokens.IssueToken(auth.Identity{ID: "customer-1", Role: auth.RoleCustomer})
		require.NoError(t, err)

		body, _ := json.Marshal(api.OnlineUpdate{IsOnline: true})
		req := httptest.NewRequest(http.MethodPut, "/me/online", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		// Act
		auth.RequireUser(testTokens)(http.HandlerFunc(h.SetOnline)).ServeHTTP(rr, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, rr.Code)
		mockStorage.AssertNotCalled(t, "SetProviderOnline", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestGetProvider(t *testing.T) {
	providerRequest := func(t *testing.T, providerID string, identity *auth.Identity) *http.Request {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/providers/"+providerID, nil)
		if identity != nil {
			token, err := testTokens.IssueToken(*identity)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer "+token)
		}

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("providerId", providerID)
		return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}

	servePublic := func(h *AccountsHandler, req *http.Request) *httptest.ResponseRecorder {
		rr := httptest.NewRecorder()
		auth.OptionalUser(testTokens)(http.HandlerFunc(h.GetProvider)).ServeHTTP(rr, req)
		return rr
	}

	pending := &models.ServiceProvider{
		ID:                 uuid.NewString(),
		FirstName:          "Fanta",
		PhoneNumber:        "620000002",
		VerificationStatus: models.VerificationPending,
	}

	t.Run("Approved Profile Is Public", func(t *testing.T) {
		// Arrange
		approved := &models.ServiceProvider{
			ID:                 uuid.NewString(),
			FirstName:          "Amadou",
			PhoneNumber:        "620000001",
			VerificationStatus: models.VerificationApproved,
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProvider", mock.Anything, approved.ID).Return(approved, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		// Act
		rr := servePublic(h, providerRequest(t, approved.ID, nil))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)

		var returned api.Provider
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &returned))
		assert.Equal(t, approved.ID, returned.Id.String())
	})

	t.Run("Pending Profile Hidden From Strangers", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProvider", mock.Anything, pending.ID).Return(pending, nil)

		h := NewAccountsHandler(mockStorage, testTokens)

		// Act
		rr := servePublic(h, providerRequest(t, pending.ID, nil))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Rejected Profile Hidden From Other Accounts", func(t *testing.T) {
		// Arrange
		rejected := &models.ServiceProvider{
			ID:                 uuid.NewString(),
			VerificationStatus: models.VerificationRejected,
			RejectionReason:    "pièce d'identité illisible",
		}

		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProvider", mock.Anything, rejected.ID).Return(rejected, nil)

		h := NewAccountsHandler(mockStorage, testTokens)
		other := &auth.Identity{ID: uuid.NewString(), Role: auth.RoleCustomer}

		// Act
		rr := servePublic(h, providerRequest(t, rejected.ID, other))

		// Assert
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.NotContains(t, rr.Body.String(), rejected.RejectionReason)
	})

	t.Run("Pending Profile Visible To Its Owner", func(t *testing.T) {
		// Arrange
		mockStorage := new(mocks.Storage)
		mockStorage.On("GetProvider", mock.Anything, pending.ID).Return(pending, nil)

		h := NewAccountsHandler(mockStorage, testTokens)
		owner := &auth.Identity{ID: pending.ID, Role: auth.RoleProvider}

		// Act
		rr := servePublic(h, providerRequest(t, pending.ID, owner))

		// Assert
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
