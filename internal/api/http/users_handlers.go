package http

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/api/respond"
)

// GET /api/users[?role=member|admin]
func ListUsersHandler(db *sql.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := r.URL.Query().Get("role")
		var rows *sql.Rows
		var err error
		if role == "" {
			rows, err = db.QueryContext(r.Context(), `SELECT id,email,name,role FROM users ORDER BY email`)
		} else {
			rows, err = db.QueryContext(r.Context(), `SELECT id,email,name,role FROM users WHERE role=$1 ORDER BY email`, role)
		}
		if err != nil {
			serverError(w, r, log, err)
			return
		}
		defer rows.Close()
		out := []User{}
		for rows.Next() {
			var u User
			if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Role); err != nil {
				serverError(w, r, log, err)
				return
			}
			out = append(out, u)
		}
		if err := rows.Err(); err != nil {
			serverError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{"users": out})
	}
}
