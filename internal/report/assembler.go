package report

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/talentai/talentai/internal/assessment"
)

// Rand is the randomness used for career match scores.
type Rand interface {
	IntN(n int) int
}

// RandFunc adapts a function such as rand.IntN to Rand.
type RandFunc func(n int) int

func (f RandFunc) IntN(n int) int { return f(n) }

// SystemRand uses the goroutine-safe top-level math/rand/v2 source.
var SystemRand Rand = RandFunc(rand.IntN)

const (
	maxCareers       = 7
	topBuckets       = 4
	roadmapSlots     = 3
	topStrengths     = 3
	developmentAreas = 2
	minMatchScore    = 80
	matchScoreSpread = 20
)

type RankedArchetype struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Strengths   []string               `json:"strengths"`
	Weaknesses  []string               `json:"weaknesses"`
	Dimensions  []assessment.Dimension `json:"dimensions"`
	Score       float64                `json:"score"`
}

type CareerMatch struct {
	Career
	MatchScore int `json:"matchScore"`
}

type RankedBucket struct {
	Name      string  `json:"name"`
	Rationale string  `json:"rationale"`
	Score     float64 `json:"score"`
}

type Strength struct {
	Dimension   assessment.Dimension `json:"dimension"`
	Score       int                  `json:"score"`
	Description string               `json:"description"`
}

type DevelopmentArea struct {
	Dimension  assessment.Dimension `json:"dimension"`
	Score      int                  `json:"score"`
	Suggestion string               `json:"suggestion"`
}

type Insights struct {
	TopStrengths     []Strength        `json:"topStrengths"`
	DevelopmentAreas []DevelopmentArea `json:"developmentAreas"`
}

// Premium is the paid report. The embedded profile is passed through as read.
type Premium struct {
	ResultID    string    `json:"resultId,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
	assessment.Profile
	TopTwoArchetypes      []RankedArchetype `json:"topTwoArchetypes"`
	CareerRecommendations []CareerMatch     `json:"careerRecommendations"`
	TopFutureBuckets      []RankedBucket    `json:"topFutureBuckets"`
	AISkillRoadmap        []Roadmap         `json:"aiSkillRoadmap"`
	Insights              Insights          `json:"insights"`
}

// Free is the teaser report.
type Free struct {
	ResultID       string               `json:"resultId,omitempty"`
	Archetype      assessment.Archetype `json:"archetype"`
	TopDimension   Strength             `json:"topDimension"`
	HollandPrimary assessment.Holland   `json:"hollandPrimary"`
	MBTIType       string               `json:"mbtiType"`
	FutureBuckets  []string             `json:"futureBuckets"`
	UpgradeMessage string               `json:"upgradeMessage"`
}

// Assembler builds reports from stored profiles and static content.
type Assembler struct {
	content *Content
	rng     Rand
}

// NewAssembler returns an Assembler. A nil rng uses SystemRand.
func NewAssembler(c *Content, rng Rand) *Assembler {
	if rng == nil {
		rng = SystemRand
	}
	return &Assembler{content: c, rng: rng}
}

// Premium assembles the paid report for a stored profile.
func (a *Assembler) Premium(resultID string, completedAt time.Time, p assessment.Profile) (Premium, error) {
	dims := p.Dimensions
	if err := dims.Check(); err != nil {
		return Premium{}, err
	}
	return Premium{
		ResultID:              resultID,
		CompletedAt:           completedAt,
		Profile:               p,
		TopTwoArchetypes:      TopTwoArchetypes(dims, a.content),
		CareerRecommendations: CareerRecommendations(p.Holland.Primary, p.Archetype.Name, dims, a.content, a.rng),
		TopFutureBuckets:      TopFutureBuckets(dims, a.content),
		AISkillRoadmap:        AISkillRoadmap(dims, a.content),
		Insights:              BuildInsights(dims, a.content),
	}, nil
}

// Free assembles the teaser report for a stored profile.
func (a *Assembler) Free(resultID string, p assessment.Profile) (Free, error) {
	if err := p.Dimensions.Check(); err != nil {
		return Free{}, err
	}
	top := p.Dimensions.Ranked()[0]
	return Free{
		ResultID:  resultID,
		Archetype: p.Archetype,
		TopDimension: Strength{
			Dimension:   top.Dimension,
			Score:       top.Score,
			Description: a.content.Dimensions[top.Dimension].Description,
		},
		HollandPrimary: p.Holland.Primary,
		MBTIType:       p.MBTI.Type,
		FutureBuckets:  p.FutureBuckets,
		UpgradeMessage: a.content.UpgradeMessage,
	}, nil
}

func meanOf(p assessment.Percentiles, dims []assessment.Dimension) float64 {
	if len(dims) == 0 {
		return 0
	}
	sum := 0
	for _, d := range dims {
		sum += p[d]
	}
	return float64(sum) / float64(len(dims))
}

// TopTwoArchetypes scores each archetype definition by the mean of its
// dimensions and returns the best two. Ties keep table order.
func TopTwoArchetypes(p assessment.Percentiles, c *Content) []RankedArchetype {
	ranked := make([]RankedArchetype, 0, len(c.Archetypes))
	for _, def := range c.Archetypes {
		ranked = append(ranked, RankedArchetype{
			Name:        def.Name,
			Description: def.Description,
			Strengths:   def.Strengths,
			Weaknesses:  def.Weaknesses,
			Dimensions:  def.Dimensions,
			Score:       meanOf(p, def.Dimensions),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	return ranked
}

// CareerRecommendations returns up to seven careers for the Holland type,
// falling back to investigative, each with a match score in [80, 99]. The
// list itself depends only on primary.
func CareerRecommendations(primary assessment.Holland, archetype string, p assessment.Percentiles, c *Content, rng Rand) []CareerMatch {
	careers, ok := c.Careers[primary]
	if !ok {
		careers = c.Careers[assessment.Investigative]
	}
	if len(careers) > maxCareers {
		careers = careers[:maxCareers]
	}
	out := make([]CareerMatch, 0, len(careers))
	for _, career := range careers {
		out = append(out, CareerMatch{
			Career:     career,
			MatchScore: minMatchScore + rng.IntN(matchScoreSpread),
		})
	}
	return out
}

// TopFutureBuckets ranks the bucket table like TopTwoArchetypes and returns
// the best four.
func TopFutureBuckets(p assessment.Percentiles, c *Content) []RankedBucket {
	ranked := make([]RankedBucket, 0, len(c.FutureBuckets))
	for _, b := range c.FutureBuckets {
		ranked = append(ranked, RankedBucket{
			Name:      b.Name,
			Rationale: b.Rationale,
			Score:     meanOf(p, b.Dimensions),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > topBuckets {
		ranked = ranked[:topBuckets]
	}
	return ranked
}

// AISkillRoadmap picks the plans for the top three dimensions that have one
// and appends the fallback plan once when fewer than three matched.
func AISkillRoadmap(p assessment.Percentiles, c *Content) []Roadmap {
	out := make([]Roadmap, 0, roadmapSlots)
	for _, ds := range p.Ranked()[:roadmapSlots] {
		if r, ok := c.Roadmaps[ds.Dimension]; ok {
			out = append(out, r)
		}
	}
	if len(out) < roadmapSlots {
		out = append(out, c.FallbackRoadmap)
	}
	return out
}

// BuildInsights lists the three strongest dimensions and the two weakest,
// weakest first.
func BuildInsights(p assessment.Percentiles, c *Content) Insights {
	ranked := p.Ranked()
	in := Insights{
		TopStrengths:     make([]Strength, 0, topStrengths),
		DevelopmentAreas: make([]DevelopmentArea, 0, developmentAreas),
	}
	for _, ds := range ranked[:topStrengths] {
		in.TopStrengths = append(in.TopStrengths, Strength{
			Dimension:   ds.Dimension,
			Score:       ds.Score,
			Description: c.Dimensions[ds.Dimension].Description,
		})
	}
	for i := len(ranked) - 1; i >= len(ranked)-developmentAreas; i-- {
		ds := ranked[i]
		in.DevelopmentAreas = append(in.DevelopmentAreas, DevelopmentArea{
			Dimension:  ds.Dimension,
			Score:      ds.Score,
			Suggestion: c.Dimensions[ds.Dimension].Suggestion,
		})
	}
	return in
}
