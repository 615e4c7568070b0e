// internal/auth/middleware/attach_role.go
package auth

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/talentai/talentai/internal/api/respond"
	"github.com/talentai/talentai/internal/rbac"
)

// AttachRoleFromDB replaces the token's role with the stored one so role
// changes apply before the token expires. A deleted user is rejected.
// allowClaimFallback keeps the claim role when the lookup fails for another
// reason (dev/offline); in prod such requests are denied.
func AttachRoleFromDB(db *sql.DB, allowClaimFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sub := SubjectFromContext(ctx)

			var role string
			err := db.QueryRowContext(ctx, `SELECT role FROM users WHERE id=$1`, sub).Scan(&role)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(rbac.WithRole(ctx, role)))
			case errors.Is(err, sql.ErrNoRows):
				respond.Error(w, http.StatusForbidden, "unknown user")
			case allowClaimFallback && rbac.RoleFromContext(ctx) != "":
				next.ServeHTTP(w, r)
			default:
				respond.Error(w, http.StatusForbidden, "forbidden")
			}
		})
	}
}
