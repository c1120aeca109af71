// Package listings serves listing creation, the public catalogue and the
// owner-facing availability toggle. Public queries only ever return approved
// listings; pending and rejected ones are visible to their owner and to
// moderators.
package listings

import (
	"encoding/json"
	"net/http"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/mapping"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ListingsHandler holds the dependencies for listing-related handlers.
type ListingsHandler struct {
	Store storage.ListingStore
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(store storage.ListingStore) *ListingsHandler {
	return &ListingsHandler{Store: store}
}

// CreateRental submits a rental listing into the moderation queue.
func (h *ListingsHandler) CreateRental(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, &models.AuthorizationError{Reason: "authentication required"})
		return
	}

	var req api.NewRental
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}
	if req.RentalType != string(models.RentalShortTerm) && req.RentalType != string(models.RentalLongTerm) {
		http.Error(w, "rental_type must be short_term or long_term", http.StatusBadRequest)
		return
	}

	created, err := h.Store.CreateRental(r.Context(), mapping.ToDomainNewRental(&req, identity.ID))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiRental(created))
}

// CreatePropertySale submits a property sale listing into the moderation
// queue.
func (h *ListingsHandler) CreatePropertySale(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, &models.AuthorizationError{Reason: "authentication required"})
		return
	}

	var req api.NewPropertySale
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	created, err := h.Store.CreatePropertySale(r.Context(), mapping.ToDomainNewPropertySale(&req, identity.ID))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiPropertySale(created))
}

// CreateVehicleSale submits a vehicle sale listing into the moderation queue.
func (h *ListingsHandler) CreateVehicleSale(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, &models.AuthorizationError{Reason: "authentication required"})
		return
	}

	var req api.NewVehicleSale
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	created, err := h.Store.CreateVehicleSale(r.Context(), mapping.ToDomainNewVehicleSale(&req, identity.ID))
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, mapping.ToApiVehicleSale(created))
}

// ListRentals returns approved rentals, optionally filtered by rental_type
// and availability query parameters.
func (h *ListingsHandler) ListRentals(w http.ResponseWriter, r *http.Request) {
	var filter storage.RentalFilter

	if v := r.URL.Query().Get("rental_type"); v != "" {
		if v != string(models.RentalShortTerm) && v != string(models.RentalLongTerm) {
			http.Error(w, "rental_type must be short_term or long_term", http.StatusBadRequest)
			return
		}
		rt := models.RentalType(v)
		filter.RentalType = &rt
	}
	if v := r.URL.Query().Get("available"); v != "" {
		available := v == "true"
		filter.IsAvailable = &available
	}

	rentals, err := h.Store.ListPublicRentals(r.Context(), filter)
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Rental, len(rentals))
	for i := range rentals {
		out[i] = mapping.ToApiRental(&rentals[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListPropertySales returns approved property sale listings.
func (h *ListingsHandler) ListPropertySales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Store.ListPublicPropertySales(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.PropertySale, len(sales))
	for i := range sales {
		out[i] = mapping.ToApiPropertySale(&sales[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListVehicleSales returns approved vehicle sale listings.
func (h *ListingsHandler) ListVehicleSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Store.ListPublicVehicleSales(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.VehicleSale, len(sales))
	for i := range sales {
		out[i] = mapping.ToApiVehicleSale(&sales[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// ListPendingRentals returns the rental moderation queue.
func (h *ListingsHandler) ListPendingRentals(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.Store.ListPendingRentals(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	out := make([]*api.Rental, len(rentals))
	for i := range rentals {
		out[i] = mapping.ToApiRental(&rentals[i])
	}
	respond.JSON(w, http.StatusOK, out)
}

// GetRental returns one rental listing. Non-approved listings are only
// visible to their owner.
func (h *ListingsHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	listing, err := h.Store.GetRental(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if !h.visible(r, listing.Status, listing.OwnerID) {
		respond.Error(w, &models.NotFoundError{Kind: "rental", ID: listing.ID})
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiRental(listing))
}

// GetPropertySale returns one property sale listing with the same visibility
// rule as GetRental.
func (h *ListingsHandler) GetPropertySale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.Store.GetPropertySale(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if !h.visible(r, sale.Status, sale.OwnerID) {
		respond.Error(w, &models.NotFoundError{Kind: "property sale", ID: sale.ID})
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiPropertySale(sale))
}

// GetVehicleSale returns one vehicle sale listing with the same visibility
// rule as GetRental.
func (h *ListingsHandler) GetVehicleSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.Store.GetVehicleSale(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if !h.visible(r, sale.Status, sale.OwnerID) {
		respond.Error(w, &models.NotFoundError{Kind: "vehicle sale", ID: sale.ID})
		return
	}

	respond.JSON(w, http.StatusOK, mapping.ToApiVehicleSale(sale))
}

// visible reports whether the caller may see a listing in the given status.
// Sold listings stay visible; pending and rejected ones only to their owner.
func (h *ListingsHandler) visible(r *http.Request, status models.ApprovalStatus, ownerID string) bool {
	if status == models.ApprovalApproved || status == models.ApprovalSold {
		return true
	}
	identity, ok := auth.FromContext(r.Context())
	return ok && identity.ID == ownerID
}

// SetAvailability flips a rental's availability flag. Owner only.
func (h *ListingsHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, &models.AuthorizationError{Reason: "authentication required"})
		return
	}

	listing, err := h.Store.GetRental(r.Context(), chi.URLParam(r, "listingId"))
	if err != nil {
		respond.Error(w, err)
		return
	}
	if listing.OwnerID != identity.ID {
		respond.Error(w, &models.AuthorizationError{Reason: "only the owner may update availability"})
		return
	}

	var req api.AvailabilityUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		return
	}

	if err := h.Store.SetRentalAvailability(r.Context(), listing.ID, req.IsAvailable); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
