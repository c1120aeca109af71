// Package accounts serves registration, login and the public actor
// directory. Providers and companies enter the verification queue on
// registration; customers skip it.
package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/mapping"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store  storage.AccountStore
	Tokens *auth.Service
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore, tokens *auth.Service) *AccountsHandler {
	return &AccountsHandler{Store: store, Tokens: tokens}
}

// RegisterProvider creates a provider account in the verification queue.
func (h *AccountsHandler) RegisterProvider(w http.ResponseWriter, r *http.Request) {
	var req api.NewProvider
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	provider := mapping.ToDomainNewProvider(&req)
	hash, err := h.Tokens.HashPassword(provider.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}
	provider.Password = hash

	created, err := h.Store.CreateProvider(r.Context(), provider)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiProvider(created))
}

// RegisterCompany creates a company account in the verification queue.
func (h *AccountsHandler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req api.NewCompany
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	company := mapping.ToDomainNewCompany(&req)
	hash, err := h.Tokens.HashPassword(company.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}
	company.Password = hash

	created, err := h.Store.CreateCompany(r.Context(), company)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiCompany(created))
}

// RegisterCustomer creates a customer account. Customers are not subject to
// verification and can book immediately.
func (h *AccountsHandler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req api.NewCustomer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	customer := mapping.ToDomainNewCustomer(&req)
	hash, err := h.Tokens.HashPassword(customer.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}
	customer.Password = hash

	created, err := h.Store.CreateCustomer(r.Context(), customer)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiCustomer(created))
}

// RegisterAdmin creates a stored admin account. The route is only reachable
// behind moderator verification.
func (h *AccountsHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req api.NewAdmin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	admin := mapping.ToDomainNewAdmin(&req)
	hash, err := h.Tokens.HashPassword(admin.Password)
	if err != nil {
		respond.Error(w, err)
		return
	}
	admin.Password = hash

	created, err := h.Store.CreateAdmin(r.Context(), admin)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiAdmin(created))
}

// Login authenticates any account kind by phone number. All account
// collections are tried in turn; the first match wins since phone numbers
// are unique per collection.
func (h *AccountsHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	identity, hash, err := h.lookup(r, req.PhoneNumber)
	if err != nil {
		respond.Error(w, auth.ErrInvalidCredentials)
		return
	}
	if err := h.Tokens.CheckPassword(hash, req.Password); err != nil {
		respond.Error(w, err)
		return
	}

	token, err := h.Tokens.IssueToken(identity)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, api.Session{
		Token: token,
		Role:  string(identity.Role),
		Id:    identity.ID,
	})
}

func (h *AccountsHandler) lookup(r *http.Request, phone string) (auth.Identity, string, error) {
	ctx := r.Context()

	if p, err := h.Store.GetProviderByPhone(ctx, phone); err == nil {
		return auth.Identity{ID: p.ID, Role: auth.RoleProvider, Phone: p.PhoneNumber}, p.Password, nil
	}
	if c, err := h.Store.GetCompanyByPhone(ctx, phone); err == nil {
		return auth.Identity{ID: c.ID, Role: auth.RoleCompany, Phone: c.PhoneNumber}, c.Password, nil
	}
	if c, err := h.Store.GetCustomerByPhone(ctx, phone); err == nil {
		return auth.Identity{ID: c.ID, Role: auth.RoleCustomer, Phone: c.PhoneNumber}, c.Password, nil
	}
	if a, err := h.Store.GetAdminByPhone(ctx, phone); err == nil {
		return auth.Identity{ID: a.ID, Role: auth.RoleAdmin, Phone: a.PhoneNumber}, a.Password, nil
	}
	return auth.Identity{}, "", auth.ErrInvalidCredentials
}

// GetProvider returns one provider's public profile. Providers still in the
// verification queue, or rejected, are only visible to themselves; everyone
// else sees a not-found.
func (h *AccountsHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "providerId")
	provider, err := h.Store.GetProvider(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if !h.visible(r, provider.VerificationStatus, provider.ID) {
		respond.Error(w, &models.NotFoundError{Kind: "provider", ID: id})
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiProvider(provider))
}

func (h *AccountsHandler) visible(r *http.Request, status models.VerificationStatus, ownerID string) bool {
	if status == models.VerificationApproved {
		return true
	}
	identity, ok := auth.FromContext(r.Context())
	return ok && identity.ID == ownerID
}

// ListPublicProviders returns approved providers only.
func (h *AccountsHandler) ListPublicProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.Store.ListPublicProviders(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Provider, len(providers))
	for i := range providers {
		out[i] = mapping.ToApiProvider(&providers[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListPublicCompanies returns approved companies only.
func (h *AccountsHandler) ListPublicCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Store.ListPublicCompanies(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Company, len(companies))
	for i := range companies {
		out[i] = mapping.ToApiCompany(&companies[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListProviders returns every provider regardless of verification status,
// for the moderation queue.
func (h *AccountsHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	providers, err := h.Store.ListProviders(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Provider, len(providers))
	for i := range providers {
		out[i] = mapping.ToApiProvider(&providers[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// SetOnline flips the caller's online flag. Providers only.
func (h *AccountsHandler) SetOnline(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok || identity.Role != auth.RoleProvider {
		respond.Error(w, &models.AuthorizationError{Reason: "provider account required"})
		return
	}

	var req api.OnlineUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	if err := h.Store.SetProviderOnline(r.Context(), identity.ID, req.IsOnline); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Me returns the authenticated caller's own profile.
func (h *AccountsHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, &models.AuthorizationError{Reason: "authentication required"})
		return
	}

	switch identity.Role {
	case auth.RoleProvider:
		provider, err := h.Store.GetProvider(r.Context(), identity.ID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, mapping.ToApiProvider(provider))
	case auth.RoleCompany:
		company, err := h.Store.GetCompany(r.Context(), identity.ID)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, mapping.ToApiCompany(company))
	case auth.RoleCustomer:
		customer, err := h.Store.GetCustomerByPhone(r.Context(), identity.Phone)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, mapping.ToApiCustomer(customer))
	case auth.RoleAdmin:
		admin, err := h.Store.GetAdminByPhone(r.Context(), identity.Phone)
		if err != nil {
			respond.Error(w, err)
			return
		}
		respond.JSON(w, http.StatusOK, mapping.ToApiAdmin(admin))
	default:
		respond.Error(w, errors.New("unknown account role"))
	}
}
