package assessment_test

import (
	"testing"

	"github.com/talentai/talentai/internal/assessment"
)

func uniformAnswers(b *assessment.Bank, rating int) []assessment.Answer {
	qs := b.All()
	out := make([]assessment.Answer, 0, len(qs))
	for _, q := range qs {
		out = append(out, assessment.Answer{QuestionID: q.ID, Rating: rating})
	}
	return out
}

func TestDefaultBankShape(t *testing.T) {
	b := assessment.DefaultBank()
	if b.Len() != 45 {
		t.Fatalf("expected 45 questions, got %d", b.Len())
	}
	counts := map[assessment.Dimension]int{}
	seen := map[int]bool{}
	for _, q := range b.All() {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if !q.Dimension.Valid() {
			t.Fatalf("question %d has unknown dimension %q", q.ID, q.Dimension)
		}
		counts[q.Dimension]++
	}
	for _, d := range assessment.Dimensions {
		want := 6
		if d == assessment.Independent {
			want = 3
		}
		if counts[d] != want {
			t.Fatalf("%s: expected %d questions, got %d", d, want, counts[d])
		}
		if b.MaxScore(d) != want*5 {
			t.Fatalf("%s: expected max score %d, got %d", d, want*5, b.MaxScore(d))
		}
	}
}

func TestScoreEmptyAnswers(t *testing.T) {
	p := assessment.DefaultBank().Score(nil)
	if len(p) != len(assessment.Dimensions) {
		t.Fatalf("expected %d dimensions, got %d", len(assessment.Dimensions), len(p))
	}
	for _, d := range assessment.Dimensions {
		if p[d] != 0 {
			t.Fatalf("%s: expected 0, got %d", d, p[d])
		}
	}
}

func TestScoreAllFives(t *testing.T) {
	b := assessment.DefaultBank()
	p := b.Score(uniformAnswers(b, 5))
	for _, d := range assessment.Dimensions {
		if p[d] != 100 {
			t.Fatalf("%s: expected 100, got %d", d, p[d])
		}
	}
}

func TestScoreAllThrees(t *testing.T) {
	b := assessment.DefaultBank()
	raw := b.Sum(uniformAnswers(b, 3))
	if raw[assessment.Analytical] != 18 || raw[assessment.Independent] != 9 {
		t.Fatalf("unexpected raw sums: %+v", raw)
	}
	p := b.Score(uniformAnswers(b, 3))
	for _, d := range assessment.Dimensions {
		if p[d] != 60 {
			t.Fatalf("%s: expected 60, got %d", d, p[d])
		}
	}
}

func TestScoreRangeForValidAnswers(t *testing.T) {
	b := assessment.DefaultBank()
	qs := b.All()
	for seed := 0; seed < 50; seed++ {
		answers := make([]assessment.Answer, 0, len(qs))
		for i, q := range qs {
			answers = append(answers, assessment.Answer{QuestionID: q.ID, Rating: 1 + (i*7+seed)%5})
		}
		for d, v := range b.Score(answers) {
			if v < 0 || v > 100 {
				t.Fatalf("seed %d: %s out of range: %d", seed, d, v)
			}
		}
	}
}

func TestScoreIgnoresUnknownQuestions(t *testing.T) {
	b := assessment.DefaultBank()
	p := b.Score([]assessment.Answer{
		{QuestionID: 1, Rating: 5},
		{QuestionID: 999, Rating: 5},
		{QuestionID: -3, Rating: 4},
	})
	// 5 of 30 rounds to 17.
	if p[assessment.Analytical] != 17 {
		t.Fatalf("expected analytical 17, got %d", p[assessment.Analytical])
	}
	for _, d := range assessment.Dimensions[1:] {
		if p[d] != 0 {
			t.Fatalf("%s: expected 0, got %d", d, p[d])
		}
	}
}

func TestScoreSumsDuplicateAnswers(t *testing.T) {
	b := assessment.DefaultBank()
	once := b.Sum([]assessment.Answer{{QuestionID: 8, Rating: 4}})
	twice := b.Sum([]assessment.Answer{{QuestionID: 8, Rating: 4}, {QuestionID: 8, Rating: 4}})
	if once[assessment.Independent] != 4 || twice[assessment.Independent] != 8 {
		t.Fatalf("duplicates should sum: once=%d twice=%d", once[assessment.Independent], twice[assessment.Independent])
	}
}

func analyticalBank(n int) *assessment.Bank {
	qs := make([]assessment.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, assessment.Question{ID: i, Text: "q", Dimension: assessment.Analytical})
	}
	return assessment.NewBank(qs)
}

func TestScoreRounding(t *testing.T) {
	cases := []struct {
		questions int
		rating    int
		want      int
	}{
		{questions: 4, rating: 1, want: 5}, // 1/20
		{questions: 8, rating: 1, want: 3}, // 1/40 = 2.5 rounds up
		{questions: 6, rating: 2, want: 7}, // 2/30 = 6.67
		{questions: 3, rating: 1, want: 7}, // 1/15 = 6.67
		{questions: 6, rating: 1, want: 3}, // 1/30 = 3.33
	}
	for _, tc := range cases {
		b := analyticalBank(tc.questions)
		got := b.Score([]assessment.Answer{{QuestionID: 1, Rating: tc.rating}})[assessment.Analytical]
		if got != tc.want {
			t.Fatalf("%d questions, rating %d: expected %d, got %d", tc.questions, tc.rating, tc.want, got)
		}
	}
}

func TestNewBankSkipsDuplicateIDs(t *testing.T) {
	b := assessment.NewBank([]assessment.Question{
		{ID: 1, Text: "first", Dimension: assessment.Verbal},
		{ID: 1, Text: "second", Dimension: assessment.Physical},
	})
	if b.Len() != 1 {
		t.Fatalf("expected 1 question, got %d", b.Len())
	}
	q, ok := b.Lookup(1)
	if !ok || q.Text != "first" {
		t.Fatalf("unexpected lookup: %+v %v", q, ok)
	}
	if b.MaxScore(assessment.Physical) != 0 {
		t.Fatalf("duplicate must not count toward physical max")
	}
}
