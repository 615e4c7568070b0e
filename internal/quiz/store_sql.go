package quiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQLStore keeps results in the quiz_results table. Answers and profile are
// JSON columns; completed_at is unix milliseconds.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(ctx context.Context, r Result) error {
	aj, err := json.Marshal(r.Answers)
	if err != nil {
		return err
	}
	pj, err := json.Marshal(r.Profile)
	if err != nil {
		return err
	}
	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM quiz_results WHERE id=$1`, r.ID).Scan(&exists)
	if err == nil {
		return ErrDuplicateID
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quiz_results (id,user_id,quiz_type,answers_json,profile_json,completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		r.ID, r.UserID, r.QuizType, string(aj), string(pj), r.CompletedAt.UnixMilli())
	return err
}

func (s *SQLStore) Get(ctx context.Context, id string) (Result, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,user_id,quiz_type,answers_json,profile_json,completed_at
		   FROM quiz_results WHERE id=$1`, id)
	r, err := scanResult(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrResultNotFound
		}
		return Result{}, err
	}
	return r, nil
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id,user_id,quiz_type,answers_json,profile_json,completed_at
		   FROM quiz_results WHERE user_id=$1
		  ORDER BY completed_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (Result, error) {
	var (
		r      Result
		aj, pj string
		ms     int64
	)
	if err := sc.Scan(&r.ID, &r.UserID, &r.QuizType, &aj, &pj, &ms); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal([]byte(aj), &r.Answers); err != nil {
		return Result{}, fmt.Errorf("result %s answers: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(pj), &r.Profile); err != nil {
		return Result{}, fmt.Errorf("result %s profile: %w", r.ID, err)
	}
	r.CompletedAt = time.UnixMilli(ms).UTC()
	return r, nil
}
