package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talentai/talentai/internal/assessment"
	"github.com/talentai/talentai/internal/logger"
	"github.com/talentai/talentai/internal/metrics"
	syncx "github.com/talentai/talentai/internal/sync"
)

// EventSink receives one event per stored submission. *syncx.EventRepo
// satisfies it.
type EventSink interface {
	Emit(ctx context.Context, typ, key string, data any) error
}

// Service scores submissions and reads stored results for their owner.
type Service struct {
	engine  *assessment.Engine
	store   Store
	events  EventSink
	metrics *metrics.Metrics
	log     *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewService wires a Service. events, m and log may be nil.
func NewService(engine *assessment.Engine, store Store, events EventSink, m *metrics.Metrics, log *zap.Logger) *Service {
	if engine == nil {
		engine = assessment.NewEngine()
	}
	return &Service{
		engine:  engine,
		store:   store,
		events:  events,
		metrics: m,
		log:     logger.OrNop(log),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Questions returns the bank in its canonical order.
func (s *Service) Questions() []assessment.Question {
	return s.engine.Bank.All()
}

// ValidateAnswers rejects ratings outside the Likert range. Unknown question
// ids are left for the scorer to ignore.
func ValidateAnswers(answers []assessment.Answer) error {
	for _, a := range answers {
		if a.Rating < assessment.MinRating || a.Rating > assessment.MaxRating {
			return fmt.Errorf("%w: question %d answered %d", ErrInvalidRating, a.QuestionID, a.Rating)
		}
	}
	return nil
}

// Submit scores answers for userID, stores the result and records it.
func (s *Service) Submit(ctx context.Context, userID string, answers []assessment.Answer) (Result, error) {
	if err := ValidateAnswers(answers); err != nil {
		return Result{}, err
	}
	profile, err := s.engine.Evaluate(answers)
	if err != nil {
		return Result{}, fmt.Errorf("evaluate: %w", err)
	}
	if answers == nil {
		answers = []assessment.Answer{}
	}
	r := Result{
		ID:          s.newID(),
		UserID:      userID,
		QuizType:    QuizType,
		Answers:     answers,
		Profile:     profile,
		CompletedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.Create(ctx, r); err != nil {
		return Result{}, fmt.Errorf("store result: %w", err)
	}

	s.metrics.ObserveSubmission(profile.Archetype.Name)
	if s.events != nil {
		payload := map[string]string{
			"userId":         userID,
			"archetype":      profile.Archetype.Name,
			"hollandPrimary": string(profile.Holland.Primary),
		}
		if err := s.events.Emit(ctx, syncx.TypeQuizSubmitted, r.ID, payload); err != nil {
			// result is already stored
			s.log.Warn("event append failed", zap.String("result_id", r.ID), zap.Error(err))
		}
	}
	s.log.Debug("quiz submitted",
		zap.String("result_id", r.ID),
		zap.String("user_id", userID),
		zap.String("archetype", profile.Archetype.Name))
	return r, nil
}

// Get returns a result owned by userID. Results of other users are reported
// as not found.
func (s *Service) Get(ctx context.Context, userID, id string) (Result, error) {
	r, err := s.store.Get(ctx, id)
	if err != nil {
		return Result{}, err
	}
	if r.UserID != userID {
		return Result{}, ErrResultNotFound
	}
	return r, nil
}

// List returns summaries of userID's results, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Summary, error) {
	rs, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Summary())
	}
	return out, nil
}
