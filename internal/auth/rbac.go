package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dome-hr/dome-backend/internal"
)

type ctxKey string

// ContextUserKey is where the authenticated user lives inside a request
// context. Access it through UserFromContext rather than directly.
const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}

// RBACAuthorization builds per-route role gates from the canonical role matrix.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

// RequireRoles rejects requests whose authenticated user holds none of the
// given roles. Runs after the auth middleware has populated the context.
func (ra *RBACAuthorization) RequireRoles(roles ...int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || user == nil {
				ra.logger.Warn("authorization check failed: user not found in context")
				writeAuthError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if !user.HasRole(roles...) {
				ra.logger.WarnContext(r.Context(), "access denied: role not allowed",
					"user_id", user.ID,
					"id_roles", user.IDRoles,
					"required_roles", roles)
				writeAuthError(w, http.StatusForbidden, internal.ErrRoleNotAllowed.Message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"code":    status,
		"message": message,
	})
}
