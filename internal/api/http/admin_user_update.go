package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/api/respond"
	"github.com/talentai/talentai/internal/rbac"
)

type updateUserRoleReq struct {
	Role string `json:"role"`
}

// PATCH /api/users/{userID}/role {role}
func AdminUpdateUserRoleHandler(db *sql.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := chi.URLParam(r, "userID")

		var req updateUserRoleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		role := strings.ToLower(strings.TrimSpace(req.Role))
		if !rbac.Default().Known(role) {
			respond.Error(w, http.StatusBadRequest, "invalid role")
			return
		}

		// Ensure user exists & guard against demoting the last admin
		var curRole string
		err := db.QueryRowContext(r.Context(), `SELECT role FROM users WHERE id=$1`, target).Scan(&curRole)
		if errors.Is(err, sql.ErrNoRows) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		if err != nil {
			serverError(w, r, log, err)
			return
		}
		if curRole == rbac.RoleAdmin && role != rbac.RoleAdmin {
			var adminCount int
			if err := db.QueryRowContext(r.Context(),
				`SELECT COUNT(1) FROM users WHERE role=$1`, rbac.RoleAdmin).Scan(&adminCount); err != nil {
				serverError(w, r, log, err)
				return
			}
			if adminCount <= 1 {
				respond.Error(w, http.StatusConflict, "cannot demote the last admin")
				return
			}
		}

		if _, err := db.ExecContext(r.Context(),
			`UPDATE users SET role=$1 WHERE id=$2`, role, target); err != nil {
			serverError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
