package report_test

import (
	"encoding/json"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentai/talentai/internal/assessment"
	"github.com/talentai/talentai/internal/report"
)

// sample mirrors a stored result used across the report tests.
func sample() assessment.Percentiles {
	return assessment.Percentiles{
		assessment.Analytical:     50,
		assessment.CreativeVisual: 60,
		assessment.Empathetic:     40,
		assessment.Physical:       40,
		assessment.Verbal:         70,
		assessment.Systematic:     77,
		assessment.FutureForward:  67,
		assessment.Independent:    60,
	}
}

func content(t *testing.T) *report.Content {
	t.Helper()
	c, err := report.DefaultContent()
	require.NoError(t, err)
	return c
}

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func TestDefaultContentLoads(t *testing.T) {
	c := content(t)
	assert.Len(t, c.Archetypes, 8)
	assert.Len(t, c.FutureBuckets, 6)
	assert.Len(t, c.Careers, 6)
	assert.Equal(t, "AI Ethics", c.FallbackRoadmap.Skill)
	assert.NotEmpty(t, c.UpgradeMessage)
	for _, d := range assessment.Dimensions {
		assert.NotEmpty(t, c.Dimensions[d].Description, d)
		assert.NotEmpty(t, c.Dimensions[d].Suggestion, d)
	}
}

func TestLoadContentRejectsUnknownDimension(t *testing.T) {
	_, err := report.LoadContent([]byte(`
dimensions: {}
archetypes:
  - {name: A, dimensions: [telepathy]}
`))
	require.Error(t, err)

	_, err = report.LoadContent([]byte(`not: [valid`))
	require.Error(t, err)
}

func TestTopTwoArchetypes(t *testing.T) {
	top := report.TopTwoArchetypes(sample(), content(t))
	require.Len(t, top, 2)
	assert.Equal(t, "The Organizer", top[0].Name)
	assert.Equal(t, 77.0, top[0].Score)
	// Analyst, Innovator and Visionary tie at 63.5; table order wins.
	assert.Equal(t, "The Analyst", top[1].Name)
	assert.Equal(t, 63.5, top[1].Score)
	assert.NotEmpty(t, top[0].Strengths)
	assert.NotEmpty(t, top[0].Weaknesses)
}

func TestCareerRecommendations(t *testing.T) {
	c := content(t)
	careers := report.CareerRecommendations(assessment.Enterprising, "The Organizer", sample(), c, fixedRand(7))
	require.Len(t, careers, 6)
	assert.Equal(t, "Business Development Manager", careers[0].Title)
	for _, cm := range careers {
		assert.Equal(t, 87, cm.MatchScore)
	}

	fallback := report.CareerRecommendations(assessment.Holland("unknown"), "", sample(), c, fixedRand(0))
	require.NotEmpty(t, fallback)
	assert.Equal(t, "Data Scientist", fallback[0].Title)
	assert.Equal(t, 80, fallback[0].MatchScore)
}

func TestCareerMatchScoresStayInRange(t *testing.T) {
	c := content(t)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		for _, cm := range report.CareerRecommendations(assessment.Artistic, "", sample(), c, rng) {
			assert.GreaterOrEqual(t, cm.MatchScore, 80)
			assert.LessOrEqual(t, cm.MatchScore, 99)
		}
	}
}

func TestCareerMatchScoresDeterministicWithSeed(t *testing.T) {
	c := content(t)
	a := report.CareerRecommendations(assessment.Social, "", sample(), c, rand.New(rand.NewPCG(42, 42)))
	b := report.CareerRecommendations(assessment.Social, "", sample(), c, rand.New(rand.NewPCG(42, 42)))
	assert.Equal(t, a, b)
}

func TestTopFutureBuckets(t *testing.T) {
	top := report.TopFutureBuckets(sample(), content(t))
	require.Len(t, top, 4)
	names := []string{top[0].Name, top[1].Name, top[2].Name, top[3].Name}
	assert.Equal(t, []string{
		"Creative Industries",
		"Business & Entrepreneurship",
		"Operations & Finance",
		"Technology & Innovation",
	}, names)
	assert.Equal(t, 65.0, top[0].Score)
	assert.NotEmpty(t, top[0].Rationale)
}

func TestAISkillRoadmap(t *testing.T) {
	c := content(t)
	plans := report.AISkillRoadmap(sample(), c)
	require.Len(t, plans, 3)
	assert.Equal(t, "AI Workflow Automation", plans[0].Skill)
	assert.Equal(t, "Natural Language Processing", plans[1].Skill)
	assert.Equal(t, "Prompt Engineering and AI Product Thinking", plans[2].Skill)

	p := sample()
	p[assessment.Physical] = 95
	p[assessment.Independent] = 90
	p[assessment.Analytical] = 85
	plans = report.AISkillRoadmap(p, c)
	require.Len(t, plans, 2)
	assert.Equal(t, "Machine Learning Foundations", plans[0].Skill)
	assert.Equal(t, "AI Ethics", plans[1].Skill)
}

func TestBuildInsights(t *testing.T) {
	in := report.BuildInsights(sample(), content(t))
	require.Len(t, in.TopStrengths, 3)
	require.Len(t, in.DevelopmentAreas, 2)
	assert.Equal(t, assessment.Systematic, in.TopStrengths[0].Dimension)
	assert.Equal(t, assessment.Verbal, in.TopStrengths[1].Dimension)
	assert.Equal(t, assessment.FutureForward, in.TopStrengths[2].Dimension)
	assert.Equal(t, assessment.Physical, in.DevelopmentAreas[0].Dimension)
	assert.Equal(t, assessment.Empathetic, in.DevelopmentAreas[1].Dimension)
	assert.NotEmpty(t, in.DevelopmentAreas[0].Suggestion)
}

func TestPremiumPassesProfileThrough(t *testing.T) {
	profile, err := assessment.NewEngine().Derive(sample())
	require.NoError(t, err)
	stored, err := json.Marshal(profile)
	require.NoError(t, err)

	var readBack assessment.Profile
	require.NoError(t, json.Unmarshal(stored, &readBack))

	asm := report.NewAssembler(content(t), fixedRand(3))
	completed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	premium, err := asm.Premium("res-1", completed, readBack)
	require.NoError(t, err)

	buf, err := json.Marshal(premium)
	require.NoError(t, err)
	var top map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf, &top))

	var orig map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stored, &orig))
	for _, k := range []string{"dimensions", "archetype", "holland", "mbti", "futureBuckets"} {
		assert.JSONEq(t, string(orig[k]), string(top[k]), k)
		assert.Equal(t, string(orig[k]), string(top[k]), k)
	}
	for _, k := range []string{"topTwoArchetypes", "careerRecommendations", "topFutureBuckets", "aiSkillRoadmap", "insights"} {
		assert.Contains(t, top, k)
	}
	assert.JSONEq(t, `"res-1"`, string(top["resultId"]))
}

func TestPremiumRejectsIncompleteProfile(t *testing.T) {
	asm := report.NewAssembler(content(t), nil)
	_, err := asm.Premium("x", time.Now(), assessment.Profile{Dimensions: assessment.Percentiles{assessment.Verbal: 1}})
	require.ErrorIs(t, err, assessment.ErrIncompleteProfile)
}

func TestFree(t *testing.T) {
	profile, err := assessment.NewEngine().Derive(sample())
	require.NoError(t, err)
	free, err := report.NewAssembler(content(t), nil).Free("res-2", profile)
	require.NoError(t, err)
	assert.Equal(t, assessment.Systematic, free.TopDimension.Dimension)
	assert.Equal(t, 77, free.TopDimension.Score)
	assert.Equal(t, profile.Archetype, free.Archetype)
	assert.Equal(t, profile.MBTI.Type, free.MBTIType)
	assert.Equal(t, profile.Holland.Primary, free.HollandPrimary)
	assert.NotEmpty(t, free.UpgradeMessage)
}
