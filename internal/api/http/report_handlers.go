package http

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/api/respond"
	"github.com/talentai/talentai/internal/assessment"
	"github.com/talentai/talentai/internal/metrics"
	"github.com/talentai/talentai/internal/quiz"
	"github.com/talentai/talentai/internal/report"
)

// reportError maps assembly failures. A stored profile missing dimensions is
// corrupt data, not a client error.
func reportError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var inc *assessment.IncompleteProfileError
	if errors.As(err, &inc) {
		log.Error("stored profile incomplete", zap.Any("missing", inc.Missing))
	}
	serverError(w, r, log, err)
}

// GET /api/report/free/{resultID}
func FreeReportHandler(svc *quiz.Service, asm *report.Assembler, m *metrics.Metrics, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := loadResult(w, r, svc, log)
		if !ok {
			return
		}
		free, err := asm.Free(res.ID, res.Profile)
		if err != nil {
			reportError(w, r, log, err)
			return
		}
		m.ObserveReport(metrics.KindFree)
		respond.JSON(w, http.StatusOK, free)
	}
}

// GET /api/report/premium/{resultID}
func PremiumReportHandler(svc *quiz.Service, asm *report.Assembler, m *metrics.Metrics, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := loadResult(w, r, svc, log)
		if !ok {
			return
		}
		premium, err := asm.Premium(res.ID, res.CompletedAt, res.Profile)
		if err != nil {
			reportError(w, r, log, err)
			return
		}
		m.ObserveReport(metrics.KindPremium)
		respond.JSON(w, http.StatusOK, premium)
	}
}
