package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentai/talentai/internal/api/respond"
	auth "github.com/talentai/talentai/internal/auth/middleware"
	"github.com/talentai/talentai/internal/quiz"
	"github.com/talentai/talentai/internal/rbac"
	syncx "github.com/talentai/talentai/internal/sync"
)

// Accounts bundles what the account handlers share.
type Accounts struct {
	DB         *sql.DB
	Auth       *auth.AuthService
	Events     quiz.EventSink
	BcryptCost int
	Log        *zap.Logger
}

type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

func normalizeEmail(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// POST /api/register {email, password, name}
func RegisterHandler(a Accounts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		req.Email = normalizeEmail(req.Email)
		if req.Email == "" || req.Password == "" {
			respond.Error(w, http.StatusBadRequest, "email and password are required")
			return
		}

		u, err := createUser(r.Context(), a, req)
		switch {
		case errors.Is(err, ErrEmailTaken):
			respond.Error(w, http.StatusConflict, err.Error())
			return
		case err != nil:
			serverError(w, r, a.Log, err)
			return
		}

		if a.Events != nil {
			if err := a.Events.Emit(r.Context(), syncx.TypeUserRegistered, u.ID, map[string]string{"email": u.Email}); err != nil {
				a.Log.Warn("event append failed", zap.String("user_id", u.ID), zap.Error(err))
			}
		}
		tok, err := a.Auth.IssueJWT(u.ID, u.Email, u.Role)
		if err != nil {
			serverError(w, r, a.Log, err)
			return
		}
		u.Role = ""
		respond.JSON(w, http.StatusCreated, authResponse{Message: "User created successfully", Token: tok, User: u})
	}
}

func createUser(ctx context.Context, a Accounts, req credentials) (User, error) {
	var exists int
	err := a.DB.QueryRowContext(ctx, `SELECT 1 FROM users WHERE email=$1`, req.Email).Scan(&exists)
	if err == nil {
		return User{}, ErrEmailTaken
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return User{}, err
	}
	cost := a.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return User{}, err
	}
	u := User{ID: uuid.NewString(), Email: req.Email, Name: strings.TrimSpace(req.Name), Role: rbac.RoleMember}
	_, err = a.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		u.ID, u.Email, u.Name, string(hash), u.Role, time.Now().Unix())
	if isUniqueViolation(err) {
		return User{}, ErrEmailTaken
	}
	return u, err
}

// POST /api/login {email, password}
func LoginHandler(a Accounts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentials
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond.Error(w, http.StatusBadRequest, "bad json")
			return
		}
		req.Email = normalizeEmail(req.Email)
		if req.Email == "" || req.Password == "" {
			respond.Error(w, http.StatusBadRequest, "email and password are required")
			return
		}

		u, err := authenticate(r.Context(), a.DB, req.Email, req.Password)
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			respond.Error(w, http.StatusUnauthorized, err.Error())
			return
		case err != nil:
			serverError(w, r, a.Log, err)
			return
		}
		tok, err := a.Auth.IssueJWT(u.ID, u.Email, u.Role)
		if err != nil {
			serverError(w, r, a.Log, err)
			return
		}
		u.Role = ""
		respond.JSON(w, http.StatusOK, authResponse{Message: "Login successful", Token: tok, User: u})
	}
}

func authenticate(ctx context.Context, db *sql.DB, email, password string) (User, error) {
	var (
		u    User
		hash string
	)
	err := db.QueryRowContext(ctx,
		`SELECT id, email, name, role, password_hash FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.Role, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrInvalidCredentials
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GET /api/me
func MeHandler(db *sql.DB, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := auth.SubjectFromContext(r.Context())
		var u User
		err := db.QueryRowContext(r.Context(),
			`SELECT id, email, name, role FROM users WHERE id=$1`, sub,
		).Scan(&u.ID, &u.Email, &u.Name, &u.Role)
		if errors.Is(err, sql.ErrNoRows) {
			respond.Error(w, http.StatusNotFound, "user not found")
			return
		}
		if err != nil {
			serverError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, struct {
			User
			Permissions []string `json:"permissions"`
		}{u, rbac.Default().Permissions(u.Role)})
	}
}
