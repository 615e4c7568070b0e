package assessment_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/talentai/talentai/internal/assessment"
)

func flat(v int) assessment.Percentiles {
	p := assessment.Percentiles{}
	for _, d := range assessment.Dimensions {
		p[d] = v
	}
	return p
}

func with(base assessment.Percentiles, kv map[assessment.Dimension]int) assessment.Percentiles {
	out := assessment.Percentiles{}
	for k, v := range base {
		out[k] = v
	}
	for k, v := range kv {
		out[k] = v
	}
	return out
}

func TestRankedKeepsCanonicalOrderOnTies(t *testing.T) {
	ranked := with(flat(50), map[assessment.Dimension]int{
		assessment.Independent: 90,
		assessment.Verbal:      90,
	}).Ranked()
	got := []assessment.Dimension{ranked[0].Dimension, ranked[1].Dimension, ranked[2].Dimension}
	want := []assessment.Dimension{assessment.Verbal, assessment.Independent, assessment.Analytical}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDeriveArchetypeCombo(t *testing.T) {
	p := with(flat(20), map[assessment.Dimension]int{
		assessment.Analytical:    95,
		assessment.Systematic:    90,
		assessment.FutureForward: 85,
	})
	a, err := assessment.DeriveArchetype(p, assessment.DefaultTables())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a.Name != "The Strategic Architect" {
		t.Fatalf("expected combo archetype, got %q", a.Name)
	}
}

func TestDeriveArchetypeComboIsOrderSensitive(t *testing.T) {
	// Same three dimensions, different rank order: no combo, single fallback.
	p := with(flat(20), map[assessment.Dimension]int{
		assessment.Systematic:    95,
		assessment.Analytical:    90,
		assessment.FutureForward: 85,
	})
	a, err := assessment.DeriveArchetype(p, assessment.DefaultTables())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a.Name != "The Organizer" {
		t.Fatalf("expected single-dimension fallback, got %q", a.Name)
	}
}

func TestDeriveArchetypeTieFallsBackToAnalyst(t *testing.T) {
	for _, v := range []int{0, 60, 100} {
		a, err := assessment.DeriveArchetype(flat(v), assessment.DefaultTables())
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		if a.Name != "The Analyst" {
			t.Fatalf("flat %d: expected The Analyst, got %q", v, a.Name)
		}
	}
}

func TestDeriveArchetypeBalancedFallback(t *testing.T) {
	tables := assessment.DefaultTables()
	tables.Combos = nil
	tables.Singles = nil
	a, err := assessment.DeriveArchetype(flat(40), tables)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if a.Name != "Balanced Learner" {
		t.Fatalf("expected Balanced Learner, got %q", a.Name)
	}
}

func TestDeriveArchetypeDeterministic(t *testing.T) {
	p := assessment.Percentiles{
		assessment.Analytical: 50, assessment.CreativeVisual: 60, assessment.Empathetic: 40,
		assessment.Physical: 45, assessment.Verbal: 70, assessment.Systematic: 77,
		assessment.FutureForward: 67, assessment.Independent: 33,
	}
	first, err := assessment.DeriveArchetype(p, assessment.DefaultTables())
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, _ := assessment.DeriveArchetype(p, assessment.DefaultTables())
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
	if first.Name != "The Organizer" {
		t.Fatalf("expected The Organizer, got %q", first.Name)
	}
}

func TestDeriveHollandMeans(t *testing.T) {
	p := assessment.Percentiles{
		assessment.Analytical: 50, assessment.CreativeVisual: 60, assessment.Empathetic: 40,
		assessment.Physical: 45, assessment.Verbal: 70, assessment.Systematic: 77,
		assessment.FutureForward: 67, assessment.Independent: 33,
	}
	h, err := assessment.DeriveHolland(p)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	want := map[assessment.Holland]float64{
		assessment.Realistic:     39,
		assessment.Investigative: 58.5,
		assessment.Artistic:      46.5,
		assessment.Social:        55,
		assessment.Enterprising:  68.5,
		assessment.Conventional:  63.5,
	}
	if !reflect.DeepEqual(h.Scores, want) {
		t.Fatalf("expected %v, got %v", want, h.Scores)
	}
	if h.Primary != assessment.Enterprising || h.Secondary != assessment.Conventional {
		t.Fatalf("unexpected ranking: %s/%s", h.Primary, h.Secondary)
	}
}

func TestDeriveHollandTieUsesCanonicalOrder(t *testing.T) {
	h, err := assessment.DeriveHolland(flat(60))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if h.Primary != assessment.Realistic || h.Secondary != assessment.Investigative {
		t.Fatalf("expected realistic/investigative on tie, got %s/%s", h.Primary, h.Secondary)
	}
}

func TestDeriveMBTI(t *testing.T) {
	p := assessment.Percentiles{
		assessment.Analytical: 30, assessment.CreativeVisual: 80, assessment.Empathetic: 70,
		assessment.Physical: 10, assessment.Verbal: 85, assessment.Systematic: 40,
		assessment.FutureForward: 90, assessment.Independent: 65,
	}
	m, err := assessment.DeriveMBTI(p)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if m.Type != "ENFP" {
		t.Fatalf("expected ENFP, got %s", m.Type)
	}
	want := map[string]string{"EI": "Extraversion", "SN": "Intuition", "TF": "Feeling", "JP": "Perceiving"}
	if !reflect.DeepEqual(m.Traits, want) {
		t.Fatalf("expected %v, got %v", want, m.Traits)
	}
}

func TestDeriveMBTIEqualityPicksSecondLetter(t *testing.T) {
	m, err := assessment.DeriveMBTI(flat(50))
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if m.Type != "INFP" {
		t.Fatalf("expected INFP on full tie, got %s", m.Type)
	}
	p := with(flat(50), map[assessment.Dimension]int{
		assessment.Empathetic: 51,
		assessment.Systematic: 51,
		assessment.Analytical: 52,
	})
	m, _ = assessment.DeriveMBTI(p)
	if m.Type != "ESTJ" {
		t.Fatalf("expected ESTJ, got %s", m.Type)
	}
}

func TestDeriveFutureBuckets(t *testing.T) {
	tables := assessment.DefaultTables()

	got, err := assessment.DeriveFutureBuckets(with(flat(0), map[assessment.Dimension]int{
		assessment.Analytical:    100,
		assessment.FutureForward: 100,
	}), tables)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Technology & Innovation"}) {
		t.Fatalf("expected only technology bucket, got %v", got)
	}

	got, _ = assessment.DeriveFutureBuckets(flat(69), tables)
	if !reflect.DeepEqual(got, []string{"General Skills & Adaptability"}) {
		t.Fatalf("expected fallback, got %v", got)
	}

	got, _ = assessment.DeriveFutureBuckets(flat(70), tables)
	if len(got) != len(tables.Buckets) {
		t.Fatalf("expected every rule at threshold, got %v", got)
	}

	got, _ = assessment.DeriveFutureBuckets(with(flat(10), map[assessment.Dimension]int{
		assessment.Independent:    75,
		assessment.CreativeVisual: 80,
	}), tables)
	if !reflect.DeepEqual(got, []string{"Creative Industries", "Business & Entrepreneurship"}) {
		t.Fatalf("unexpected buckets: %v", got)
	}
}

func TestDerivationsRejectIncompleteProfile(t *testing.T) {
	partial := assessment.Percentiles{assessment.Analytical: 80, assessment.Verbal: 40}
	tables := assessment.DefaultTables()

	_, errArch := assessment.DeriveArchetype(partial, tables)
	_, errHol := assessment.DeriveHolland(partial)
	_, errMBTI := assessment.DeriveMBTI(partial)
	_, errBuck := assessment.DeriveFutureBuckets(partial, tables)
	for _, err := range []error{errArch, errHol, errMBTI, errBuck} {
		if !errors.Is(err, assessment.ErrIncompleteProfile) {
			t.Fatalf("expected ErrIncompleteProfile, got %v", err)
		}
	}
	var ipe *assessment.IncompleteProfileError
	if !errors.As(errHol, &ipe) {
		t.Fatalf("expected *IncompleteProfileError, got %T", errHol)
	}
	if len(ipe.Missing) != 6 || ipe.Missing[0] != assessment.CreativeVisual {
		t.Fatalf("unexpected missing list: %v", ipe.Missing)
	}
}
