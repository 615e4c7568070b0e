package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/talentai/talentai/internal/api/http"
	"github.com/talentai/talentai/internal/assessment"
	auth "github.com/talentai/talentai/internal/auth/middleware"
	"github.com/talentai/talentai/internal/config"
	"github.com/talentai/talentai/internal/db"
	"github.com/talentai/talentai/internal/logger"
	"github.com/talentai/talentai/internal/metrics"
	"github.com/talentai/talentai/internal/quiz"
	"github.com/talentai/talentai/internal/report"
	syncx "github.com/talentai/talentai/internal/sync"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("load .env: %v", err)
	}
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("gateway stopped", zap.Error(err))
	}
}

func run(cfg config.Config, lg *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- DB ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	dbh, err := db.Open(openCtx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return err
	}
	defer dbh.Close()

	// --- Domain ---
	content, err := report.DefaultContent()
	if err != nil {
		return err
	}
	var m *metrics.Metrics
	if cfg.EnableMetrics {
		m = metrics.Default()
	}
	events := syncx.NewEventRepo(dbh, cfg.SiteID)
	quizSvc := quiz.NewService(assessment.NewEngine(), quiz.NewSQLStore(dbh), events, m, lg)

	router := api.NewRouter(api.Deps{
		DB:             dbh,
		Auth:           auth.NewAuthService(cfg.JWTSecret, cfg.TokenTTL),
		Quiz:           quizSvc,
		Reports:        report.NewAssembler(content, report.SystemRand),
		Events:         events,
		Metrics:        m,
		Log:            lg,
		CORSOrigins:    cfg.CORSOrigins,
		RequestTimeout: cfg.RequestTimeout,
		BcryptCost:     cfg.BcryptCost,
		StrictRoles:    cfg.Mode == config.ModeOnline,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		lg.Info("listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("mode", string(cfg.Mode)),
			zap.String("db", cfg.DBDriver))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	return srv.Shutdown(shutCtx)
}
