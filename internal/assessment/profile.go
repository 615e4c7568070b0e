package assessment

import "fmt"

// Profile is the persisted outcome of one questionnaire submission.
type Profile struct {
	Dimensions    Percentiles    `json:"dimensions"`
	Archetype     Archetype      `json:"archetype"`
	Holland       HollandProfile `json:"holland"`
	MBTI          MBTITeaser     `json:"mbti"`
	FutureBuckets []string       `json:"futureBuckets"`
}

// Engine scores answers against a bank and derives a Profile.
type Engine struct {
	Bank   *Bank
	Tables Tables
}

// NewEngine returns an Engine over the default bank and tables.
func NewEngine() *Engine {
	return &Engine{Bank: DefaultBank(), Tables: DefaultTables()}
}

// Evaluate runs the full pipeline for one submission.
func (e *Engine) Evaluate(answers []Answer) (Profile, error) {
	return e.Derive(e.Bank.Score(answers))
}

// Derive computes every derived field from a percentile vector.
func (e *Engine) Derive(p Percentiles) (Profile, error) {
	arch, err := DeriveArchetype(p, e.Tables)
	if err != nil {
		return Profile{}, fmt.Errorf("archetype: %w", err)
	}
	holland, err := DeriveHolland(p)
	if err != nil {
		return Profile{}, fmt.Errorf("holland: %w", err)
	}
	mbti, err := DeriveMBTI(p)
	if err != nil {
		return Profile{}, fmt.Errorf("mbti: %w", err)
	}
	buckets, err := DeriveFutureBuckets(p, e.Tables)
	if err != nil {
		return Profile{}, fmt.Errorf("future buckets: %w", err)
	}
	return Profile{
		Dimensions:    p,
		Archetype:     arch,
		Holland:       holland,
		MBTI:          mbti,
		FutureBuckets: buckets,
	}, nil
}
