// internal/api/http/user_password.go
package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentai/talentai/internal/api/respond"
	auth "github.com/talentai/talentai/internal/auth/middleware"
)

type changePasswordReq struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// POST /api/users/change-password
func ChangePasswordHandler(db *sql.DB, cost int, log *zap.Logger) http.HandlerFunc {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.SubjectFromContext(r.Context())
		if userID == "" {
			respond.Error(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		var req changePasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		if req.NewPassword == "" {
			respond.Error(w, http.StatusBadRequest, "new password required")
			return
		}

		var storedHash string
		err := db.QueryRowContext(r.Context(), `SELECT password_hash FROM users WHERE id=$1`, userID).Scan(&storedHash)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respond.Error(w, http.StatusNotFound, "user not found")
				return
			}
			serverError(w, r, log, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.OldPassword)) != nil {
			respond.Error(w, http.StatusForbidden, "incorrect old password")
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), cost)
		if err != nil {
			serverError(w, r, log, err)
			return
		}

		_, err = db.ExecContext(r.Context(), `UPDATE users SET password_hash=$1 WHERE id=$2`, string(hash), userID)
		if err != nil {
			serverError(w, r, log, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
