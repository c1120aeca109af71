package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/fassou200-cloud/Servispro-Guinee/pkg/models"
	"github.com/fassou200-cloud/Servispro-Guinee/pkg/storage"
)

// AccessKeyHeader carries the shared moderator access key on privileged
// requests that are not tied to a stored admin account.
const AccessKeyHeader = "X-Admin-Access-Key"

// ModeratorVerifier authenticates a request as a moderator and returns the
// moderator identifier recorded on the decisions it makes.
type ModeratorVerifier interface {
	VerifyModerator(ctx context.Context, r *http.Request) (string, error)
}

// StaticKeyVerifier accepts requests carrying the shared access key. The
// recorded moderator ID is a fixed label since the key identifies the
// platform team, not an individual.
type StaticKeyVerifier struct {
	Key string
}

func (v StaticKeyVerifier) VerifyModerator(_ context.Context, r *http.Request) (string, error) {
	if v.Key == "" || r.Header.Get(AccessKeyHeader) != v.Key {
		return "", &models.AuthorizationError{Reason: "invalid moderator access key"}
	}
	return "platform", nil
}

// StoredAdminVerifier accepts requests carrying a session token for a stored
// admin account. The account must still exist at verification time.
type StoredAdminVerifier struct {
	Tokens *Service
	Admins storage.AccountStore
}

func (v StoredAdminVerifier) VerifyModerator(ctx context.Context, r *http.Request) (string, error) {
	token := bearerToken(r)
	if token == "" {
		return "", &models.AuthorizationError{Reason: "missing session token"}
	}
	identity, err := v.Tokens.ParseToken(token)
	if err != nil {
		return "", &models.AuthorizationError{Reason: "invalid session token"}
	}
	if identity.Role != RoleAdmin {
		return "", &models.AuthorizationError{Reason: "admin role required"}
	}
	admin, err := v.Admins.GetAdminByPhone(ctx, identity.Phone)
	if err != nil || admin == nil || admin.ID != identity.ID {
		return "", &models.AuthorizationError{Reason: "unknown admin account"}
	}
	return admin.ID, nil
}

// ChainVerifier tries each verifier in order and accepts the first success.
type ChainVerifier []ModeratorVerifier

func (c ChainVerifier) VerifyModerator(ctx context.Context, r *http.Request) (string, error) {
	var lastErr error
	for _, v := range c {
		id, err := v.VerifyModerator(ctx, r)
		if err == nil {
			return id, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = &models.AuthorizationError{Reason: "no moderator credentials presented"}
	}
	return "", lastErr
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
