package assessment

import "math"

// Answer is one submitted rating.
type Answer struct {
	QuestionID int `json:"questionId"`
	Rating     int `json:"answer"`
}

// RawScores holds per-dimension rating sums.
type RawScores map[Dimension]int

// Sum adds each answer's rating to its question's dimension. Answers with an
// unknown question id are skipped. Duplicate answers for one question are
// summed.
func (b *Bank) Sum(answers []Answer) RawScores {
	raw := make(RawScores, len(Dimensions))
	for _, d := range Dimensions {
		raw[d] = 0
	}
	for _, a := range answers {
		q, ok := b.byID[a.QuestionID]
		if !ok {
			continue
		}
		raw[q.Dimension] += a.Rating
	}
	return raw
}

// Score normalizes answer sums into percentiles. Halves round away from zero.
func (b *Bank) Score(answers []Answer) Percentiles {
	raw := b.Sum(answers)
	out := make(Percentiles, len(Dimensions))
	for _, d := range Dimensions {
		top := b.MaxScore(d)
		if top == 0 {
			out[d] = 0
			continue
		}
		out[d] = int(math.Round(float64(raw[d]) / float64(top) * 100))
	}
	return out
}
