// Package respond centralizes JSON encoding and the mapping from domain
// errors to HTTP status codes, so every handler surfaces the same taxonomy.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/auth"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// JSON writes v as a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Error maps a domain error to its HTTP status code and writes it. Unknown
// errors become 500s without leaking internals.
func Error(w http.ResponseWriter, err error) {
	var notFound *models.NotFoundError
	var invalidState *models.InvalidStateError
	var authz *models.AuthorizationError

	switch {
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &invalidState):
		http.Error(w, invalidState.Error(), http.StatusConflict)
	case errors.As(err, &authz):
		http.Error(w, authz.Error(), http.StatusForbidden)
	case errors.Is(err, storage.ErrPhoneAlreadyRegistered):
		http.Error(w, "An account with this phone number already exists", http.StatusConflict)
	case errors.Is(err, auth.ErrInvalidCredentials):
		http.Error(w, "Invalid phone number or password", http.StatusUnauthorized)
	case errors.Is(err, auth.ErrWeakPassword):
		http.Error(w, auth.ErrWeakPassword.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// BadRequest writes a 400 with the decoding error.
func BadRequest(w http.ResponseWriter, err error) {
	http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
}
