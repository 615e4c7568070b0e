package http

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/api/respond"
	auth "github.com/talentai/talentai/internal/auth/middleware"
	"github.com/talentai/talentai/internal/logger"
	"github.com/talentai/talentai/internal/metrics"
	"github.com/talentai/talentai/internal/quiz"
	"github.com/talentai/talentai/internal/rbac"
	"github.com/talentai/talentai/internal/report"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	DB      *sql.DB
	Auth    *auth.AuthService
	Quiz    *quiz.Service
	Reports *report.Assembler
	Events  quiz.EventSink
	Metrics *metrics.Metrics // nil disables /metrics
	Log     *zap.Logger

	CORSOrigins    []string
	RequestTimeout time.Duration
	BcryptCost     int
	// StrictRoles denies requests whose role cannot be read from the DB
	// instead of trusting the token claim.
	StrictRoles bool
}

func NewRouter(d Deps) chi.Router {
	log := logger.OrNop(d.Log)
	if d.RequestTimeout <= 0 {
		d.RequestTimeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logger.RequestLogger(log), middleware.Recoverer)
	r.Use(middleware.Timeout(d.RequestTimeout))
	if len(d.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := d.DB.PingContext(r.Context()); err != nil {
			respond.Error(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	if d.Metrics != nil {
		r.Handle("/metrics", d.Metrics.Handler())
	}

	accts := Accounts{DB: d.DB, Auth: d.Auth, Events: d.Events, BcryptCost: d.BcryptCost, Log: log}

	r.Route("/api", func(api chi.Router) {
		api.Post("/register", RegisterHandler(accts))
		api.Post("/login", LoginHandler(accts))
		api.Get("/quiz/questions", QuestionsHandler(d.Quiz))

		// Protected API (JWT -> stored role in context -> RBAC)
		api.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(d.Auth), auth.AttachRoleFromDB(d.DB, !d.StrictRoles))

			pr.Get("/me", MeHandler(d.DB, log))
			pr.With(rbac.Require("user:change_password")).
				Post("/users/change-password", ChangePasswordHandler(d.DB, d.BcryptCost, log))
			pr.With(rbac.Require("users:list")).
				Get("/users", ListUsersHandler(d.DB, log))
			pr.With(rbac.Require("users:update_role")).
				Patch("/users/{userID}/role", AdminUpdateUserRoleHandler(d.DB, log))

			pr.With(rbac.Require("quiz:take")).
				Post("/quiz/submit", SubmitQuizHandler(d.Quiz, log))
			pr.With(rbac.Require("result:view-own")).
				Get("/results", ListResultsHandler(d.Quiz, log))
			pr.With(rbac.Require("result:view-own")).
				Get("/results/{resultID}", GetResultHandler(d.Quiz, log))

			pr.With(rbac.RequireAny("report:free", "report:premium")).
				Get("/report/free/{resultID}", FreeReportHandler(d.Quiz, d.Reports, d.Metrics, log))
			pr.With(rbac.RequireAll("result:view-own", "report:premium")).
				Get("/report/premium/{resultID}", PremiumReportHandler(d.Quiz, d.Reports, d.Metrics, log))
		})
	})
	return r
}
