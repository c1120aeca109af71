package auth

import (
	"context"
	"net/http"
)

type contextKey int

const (
	identityKey contextKey = iota
	moderatorKey
)

// FromContext returns the authenticated identity stored by RequireUser.
func FromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// ModeratorFromContext returns the moderator ID stored by RequireModerator.
func ModeratorFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(moderatorKey).(string)
	return id, ok
}

// RequireUser rejects requests without a valid session token and stores the
// caller's identity on the request context.
func RequireUser(tokens *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "missing session token", http.StatusUnauthorized)
				return
			}
			identity, err := tokens.ParseToken(token)
			if err != nil {
				http.Error(w, "invalid session token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalUser stores the caller's identity when a valid session token is
// present and continues anonymously otherwise. Used on public routes whose
// response widens for owners.
func OptionalUser(tokens *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := bearerToken(r); token != "" {
				if identity, err := tokens.ParseToken(token); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), identityKey, identity))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole is RequireUser narrowed to a single role.
func RequireRole(tokens *Service, role Role) func(http.Handler) http.Handler {
	requireUser := RequireUser(tokens)
	return func(next http.Handler) http.Handler {
		return requireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := FromContext(r.Context())
			if identity.Role != role {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// RequireModerator rejects requests that fail moderator verification and
// stores the moderator ID on the request context.
func RequireModerator(verifier ModeratorVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := verifier.VerifyModerator(r.Context(), r)
			if err != nil {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			ctx := context.WithValue(r.Context(), moderatorKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
