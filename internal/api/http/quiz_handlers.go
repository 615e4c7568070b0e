package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/api/respond"
	"github.com/talentai/talentai/internal/assessment"
	auth "github.com/talentai/talentai/internal/auth/middleware"
	"github.com/talentai/talentai/internal/quiz"
)

// GET /api/quiz/questions
func QuestionsHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]any{"questions": svc.Questions()})
	}
}

// POST /api/quiz/submit {answers: [{questionId, answer}]}
func SubmitQuizHandler(svc *quiz.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Answers *[]assessment.Answer `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answers == nil {
			respond.Error(w, http.StatusBadRequest, "invalid answers format")
			return
		}

		res, err := svc.Submit(r.Context(), auth.SubjectFromContext(r.Context()), *req.Answers)
		if errors.Is(err, quiz.ErrInvalidRating) {
			respond.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			serverError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{
			"message":  "Quiz completed successfully",
			"resultId": res.ID,
			"scores":   res.Profile,
		})
	}
}

// loadResult fetches the caller's result named by {resultID}. It writes the
// error response itself and reports whether the caller should continue.
func loadResult(w http.ResponseWriter, r *http.Request, svc *quiz.Service, log *zap.Logger) (quiz.Result, bool) {
	res, err := svc.Get(r.Context(), auth.SubjectFromContext(r.Context()), chi.URLParam(r, "resultID"))
	if errors.Is(err, quiz.ErrResultNotFound) {
		respond.Error(w, http.StatusNotFound, "results not found")
		return quiz.Result{}, false
	}
	if err != nil {
		serverError(w, r, log, err)
		return quiz.Result{}, false
	}
	return res, true
}

// GET /api/results/{resultID}
func GetResultHandler(svc *quiz.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, ok := loadResult(w, r, svc, log)
		if !ok {
			return
		}
		respond.JSON(w, http.StatusOK, struct {
			ID          string             `json:"id"`
			Scores      assessment.Profile `json:"scores"`
			CompletedAt time.Time          `json:"completedAt"`
		}{res.ID, res.Profile, res.CompletedAt})
	}
}

// GET /api/results
func ListResultsHandler(svc *quiz.Service, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), auth.SubjectFromContext(r.Context()))
		if err != nil {
			serverError(w, r, log, err)
			return
		}
		respond.JSON(w, http.StatusOK, map[string]any{"results": list})
	}
}
