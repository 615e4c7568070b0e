package assessment

import "sort"

// Dimension is one of the eight trait categories questions are tagged with.
type Dimension string

const (
	Analytical     Dimension = "analytical"
	CreativeVisual Dimension = "creative_visual"
	Empathetic     Dimension = "empathetic"
	Physical       Dimension = "physical"
	Verbal         Dimension = "verbal"
	Systematic     Dimension = "systematic"
	FutureForward  Dimension = "future_forward"
	Independent    Dimension = "independent"
)

// Dimensions is the canonical dimension order. Every "first on tie" decision
// iterates this list, never a map.
var Dimensions = []Dimension{
	Analytical,
	CreativeVisual,
	Empathetic,
	Physical,
	Verbal,
	Systematic,
	FutureForward,
	Independent,
}

// Valid reports whether d is one of the canonical dimensions.
func (d Dimension) Valid() bool {
	for _, x := range Dimensions {
		if x == d {
			return true
		}
	}
	return false
}

// Holland is a RIASEC career-interest type.
type Holland string

const (
	Realistic     Holland = "realistic"
	Investigative Holland = "investigative"
	Artistic      Holland = "artistic"
	Social        Holland = "social"
	Enterprising  Holland = "enterprising"
	Conventional  Holland = "conventional"
)

// HollandTypes is the canonical RIASEC order.
var HollandTypes = []Holland{
	Realistic,
	Investigative,
	Artistic,
	Social,
	Enterprising,
	Conventional,
}

// Percentiles maps each dimension to a 0..100 score.
type Percentiles map[Dimension]int

// Check returns an *IncompleteProfileError when any canonical dimension is
// missing from p.
func (p Percentiles) Check() error {
	var missing []Dimension
	for _, d := range Dimensions {
		if _, ok := p[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return &IncompleteProfileError{Missing: missing}
	}
	return nil
}

// DimensionScore pairs a dimension with its percentile.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     int       `json:"score"`
}

// Ranked returns the dimensions sorted by percentile, highest first. Equal
// scores keep canonical order. Missing dimensions rank as zero; callers that
// need completeness call Check first.
func (p Percentiles) Ranked() []DimensionScore {
	out := make([]DimensionScore, 0, len(Dimensions))
	for _, d := range Dimensions {
		out = append(out, DimensionScore{Dimension: d, Score: p[d]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
