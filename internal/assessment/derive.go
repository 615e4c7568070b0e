package assessment

import "sort"

// DeriveArchetype looks up the top three ranked dimensions in t.Combos, then
// the top dimension in t.Singles, then falls back to t.Balanced.
func DeriveArchetype(p Percentiles, t Tables) (Archetype, error) {
	if err := p.Check(); err != nil {
		return Archetype{}, err
	}
	ranked := p.Ranked()
	key := ComboKey(ranked[0].Dimension, ranked[1].Dimension, ranked[2].Dimension)
	if a, ok := t.Combos[key]; ok {
		return a, nil
	}
	if a, ok := t.Singles[ranked[0].Dimension]; ok {
		return a, nil
	}
	return t.Balanced, nil
}

// HollandProfile is the RIASEC view of a profile. Scores are unrounded means.
type HollandProfile struct {
	Primary   Holland             `json:"primary"`
	Secondary Holland             `json:"secondary"`
	Scores    map[Holland]float64 `json:"scores"`
}

// hollandPairs names the two dimensions averaged for each RIASEC type.
var hollandPairs = map[Holland][2]Dimension{
	Realistic:     {Physical, Independent},
	Investigative: {Analytical, FutureForward},
	Artistic:      {CreativeVisual, Independent},
	Social:        {Empathetic, Verbal},
	Enterprising:  {Verbal, FutureForward},
	Conventional:  {Systematic, Analytical},
}

// DeriveHolland averages the dimension pairs and ranks the six types.
func DeriveHolland(p Percentiles) (HollandProfile, error) {
	if err := p.Check(); err != nil {
		return HollandProfile{}, err
	}
	scores := make(map[Holland]float64, len(HollandTypes))
	order := make([]Holland, len(HollandTypes))
	copy(order, HollandTypes)
	for _, h := range HollandTypes {
		pair := hollandPairs[h]
		scores[h] = float64(p[pair[0]]+p[pair[1]]) / 2
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	return HollandProfile{Primary: order[0], Secondary: order[1], Scores: scores}, nil
}

// MBTITeaser is a four-letter type built from pairwise comparisons.
type MBTITeaser struct {
	Type   string            `json:"type"`
	Traits map[string]string `json:"traits"`
}

type mbtiAxis struct {
	key         string
	left, right Dimension
	hi, lo      byte
}

// Each axis picks hi when left is strictly greater than right.
var mbtiAxes = []mbtiAxis{
	{"EI", Empathetic, Independent, 'E', 'I'},
	{"SN", Systematic, FutureForward, 'S', 'N'},
	{"TF", Analytical, Empathetic, 'T', 'F'},
	{"JP", Systematic, CreativeVisual, 'J', 'P'},
}

var mbtiLabels = map[byte]string{
	'E': "Extraversion",
	'I': "Introversion",
	'S': "Sensing",
	'N': "Intuition",
	'T': "Thinking",
	'F': "Feeling",
	'J': "Judging",
	'P': "Perceiving",
}

// DeriveMBTI runs the four axis comparisons.
func DeriveMBTI(p Percentiles) (MBTITeaser, error) {
	if err := p.Check(); err != nil {
		return MBTITeaser{}, err
	}
	letters := make([]byte, 0, len(mbtiAxes))
	traits := make(map[string]string, len(mbtiAxes))
	for _, ax := range mbtiAxes {
		l := ax.lo
		if p[ax.left] > p[ax.right] {
			l = ax.hi
		}
		letters = append(letters, l)
		traits[ax.key] = mbtiLabels[l]
	}
	return MBTITeaser{Type: string(letters), Traits: traits}, nil
}

// DeriveFutureBuckets returns the label of every satisfied rule in rule
// order, or the fallback label alone when none fire.
func DeriveFutureBuckets(p Percentiles, t Tables) ([]string, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	var out []string
	for _, r := range t.Buckets {
		for _, d := range r.Dimensions {
			if p[d] >= r.Threshold {
				out = append(out, r.Label)
				break
			}
		}
	}
	if len(out) == 0 {
		out = []string{t.BucketFallback}
	}
	return out, nil
}
