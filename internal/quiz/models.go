package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/talentai/talentai/internal/assessment"
)

// QuizType tags results produced by the current question bank.
const QuizType = "talent-v1"

var (
	ErrResultNotFound = errors.New("result not found")
	ErrInvalidRating  = errors.New("rating out of range")
	ErrDuplicateID    = errors.New("result id already exists")
)

// Result is one stored submission. Profile is stored once and read back
// verbatim by every report.
type Result struct {
	ID          string              `json:"id"`
	UserID      string              `json:"userId"`
	QuizType    string              `json:"quizType"`
	Answers     []assessment.Answer `json:"answers"`
	Profile     assessment.Profile  `json:"scores"`
	CompletedAt time.Time           `json:"completedAt"`
}

// Summary is the list view of a result.
type Summary struct {
	ID             string             `json:"id"`
	Archetype      string             `json:"archetype"`
	HollandPrimary assessment.Holland `json:"hollandPrimary"`
	MBTIType       string             `json:"mbtiType"`
	CompletedAt    time.Time          `json:"completedAt"`
}

func (r Result) Summary() Summary {
	return Summary{
		ID:             r.ID,
		Archetype:      r.Profile.Archetype.Name,
		HollandPrimary: r.Profile.Holland.Primary,
		MBTIType:       r.Profile.MBTI.Type,
		CompletedAt:    r.CompletedAt,
	}
}

// Store persists results. ListByUser returns newest first.
type Store interface {
	Create(ctx context.Context, r Result) error
	Get(ctx context.Context, id string) (Result, error)
	ListByUser(ctx context.Context, userID string) ([]Result, error)
}
