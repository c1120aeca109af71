// Package moderation serves the privileged approve/reject/sold surface.
// Every route sits behind moderator verification; the moderator ID recorded
// on decisions comes from the verified credential, never from the body.
package moderation

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/api"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/handlers/respond"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ModerationHandler holds the dependencies for moderation handlers.
type ModerationHandler struct {
	Store storage.ModerationStore
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(store storage.ModerationStore) *ModerationHandler {
	return &ModerationHandler{Store: store}
}

// moderatedKind maps the URL segment to an entity kind.
func moderatedKind(r *http.Request) (models.ModeratedKind, bool) {
	switch chi.URLParam(r, "kind") {
	case "providers":
		return models.KindProvider, true
	case "companies":
		return models.KindCompany, true
	case "rentals":
		return models.KindRental, true
	case "property-sales":
		return models.KindPropertySale, true
	case "vehicle-sales":
		return models.KindVehicleSale, true
	default:
		return "", false
	}
}

// Approve transitions an entity to approved.
func (h *ModerationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	kind, ok := moderatedKind(r)
	if !ok {
		http.Error(w, "Unknown entity kind", http.StatusNotFound)
		return
	}
	moderatorID, _ := auth.ModeratorFromContext(r.Context())

	if err := h.Store.Approve(r.Context(), kind, chi.URLParam(r, "id"), moderatorID); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reject transitions an entity to rejected with an optional reason. An empty
// body is accepted; the storage layer substitutes the default reason.
func (h *ModerationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	kind, ok := moderatedKind(r)
	if !ok {
		http.Error(w, "Unknown entity kind", http.StatusNotFound)
		return
	}
	moderatorID, _ := auth.ModeratorFromContext(r.Context())

	var req api.RejectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		respond.BadRequest(w, err)
		return
	}

	if err := h.Store.Reject(r.Context(), kind, chi.URLParam(r, "id"), moderatorID, req.Reason); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkSold transitions an approved sale listing to the terminal sold state.
func (h *ModerationHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	kind, ok := moderatedKind(r)
	if !ok {
		http.Error(w, "Unknown entity kind", http.StatusNotFound)
		return
	}
	if kind != models.KindPropertySale && kind != models.KindVehicleSale {
		http.Error(w, "Only sale listings can be marked sold", http.StatusBadRequest)
		return
	}

	if err := h.Store.MarkSold(r.Context(), kind, chi.URLParam(r, "id")); err != nil {
		respond.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
