package assessment

import "strings"

// Archetype is a named personality style.
type Archetype struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Traits      []string `json:"traits,omitempty"`
}

// BucketRule adds Label when any of Dimensions reaches Threshold.
type BucketRule struct {
	Label      string
	Dimensions []Dimension
	Threshold  int
}

// Tables holds the hand-curated lookup data used by the derivations. Callers
// build it once and pass it in; nothing in this package reads global state
// while deriving.
type Tables struct {
	// Combos is keyed by ComboKey of the top three ranked dimensions.
	Combos map[string]Archetype
	// Singles is keyed by the single top-ranked dimension.
	Singles map[Dimension]Archetype
	// Balanced is returned when neither table matches.
	Balanced Archetype

	Buckets        []BucketRule
	BucketFallback string
}

// ComboKey joins dimensions with "_" in the given order.
func ComboKey(dims ...Dimension) string {
	parts := make([]string, len(dims))
	for i, d := range dims {
		parts[i] = string(d)
	}
	return strings.Join(parts, "_")
}

const BucketThreshold = 70

// DefaultTables returns the production lookup tables.
func DefaultTables() Tables {
	return Tables{
		Combos: map[string]Archetype{
			ComboKey(Analytical, Systematic, FutureForward): {
				Name:        "The Strategic Architect",
				Description: "You combine rigorous logic with structure and a clear view of what comes next, designing systems that last.",
				Traits:      []string{"Logical", "Organized", "Forward-looking"},
			},
			ComboKey(CreativeVisual, Verbal, Empathetic): {
				Name:        "The Creative Storyteller",
				Description: "You turn ideas into images and words that move people, connecting with audiences on an emotional level.",
				Traits:      []string{"Expressive", "Imaginative", "Warm"},
			},
			ComboKey(Empathetic, Verbal, Systematic): {
				Name:        "The Community Builder",
				Description: "You bring people together, communicate clearly and keep groups running smoothly.",
				Traits:      []string{"Supportive", "Articulate", "Reliable"},
			},
			ComboKey(Physical, CreativeVisual, Independent): {
				Name:        "The Hands-On Maker",
				Description: "You think with your hands, prototyping and crafting things your own way.",
				Traits:      []string{"Practical", "Inventive", "Self-directed"},
			},
			ComboKey(FutureForward, Independent, CreativeVisual): {
				Name:        "The Trailblazer",
				Description: "You chase new possibilities on your own terms and imagine products nobody has built yet.",
				Traits:      []string{"Visionary", "Autonomous", "Original"},
			},
			ComboKey(Analytical, FutureForward, Independent): {
				Name:        "The Research Pioneer",
				Description: "You investigate unexplored questions independently and follow the evidence wherever it leads.",
				Traits:      []string{"Curious", "Rigorous", "Independent"},
			},
		},
		Singles: map[Dimension]Archetype{
			Analytical: {
				Name:        "The Analyst",
				Description: "You break down complex problems and find logical solutions through systematic thinking.",
				Traits:      []string{"Logical", "Detail-oriented", "Objective"},
			},
			CreativeVisual: {
				Name:        "The Innovator",
				Description: "You see the world differently and create unique solutions through imagination and artistry.",
				Traits:      []string{"Imaginative", "Visual", "Original"},
			},
			Empathetic: {
				Name:        "The Helper",
				Description: "You understand and support others with natural empathy and care.",
				Traits:      []string{"Caring", "Perceptive", "Supportive"},
			},
			Physical: {
				Name:        "The Doer",
				Description: "You learn and express yourself through hands-on action and physical engagement.",
				Traits:      []string{"Active", "Practical", "Energetic"},
			},
			Verbal: {
				Name:        "The Communicator",
				Description: "You connect with others and express ideas through powerful spoken and written communication.",
				Traits:      []string{"Articulate", "Persuasive", "Social"},
			},
			Systematic: {
				Name:        "The Organizer",
				Description: "You create order and structure to maximize efficiency and clarity.",
				Traits:      []string{"Structured", "Dependable", "Precise"},
			},
			FutureForward: {
				Name:        "The Visionary",
				Description: "You see possibilities and potential that others miss, driving innovation forward.",
				Traits:      []string{"Forward-thinking", "Adaptable", "Curious"},
			},
			Independent: {
				Name:        "The Pioneer",
				Description: "You forge your own path and thrive when given autonomy and freedom.",
				Traits:      []string{"Self-reliant", "Bold", "Driven"},
			},
		},
		Balanced: Archetype{
			Name:        "Balanced Learner",
			Description: "Your strengths are spread evenly, so you can adapt to many kinds of work and learning.",
		},
		Buckets: []BucketRule{
			{Label: "Technology & Innovation", Dimensions: []Dimension{Analytical, FutureForward}, Threshold: BucketThreshold},
			{Label: "Creative Industries", Dimensions: []Dimension{CreativeVisual}, Threshold: BucketThreshold},
			{Label: "Healthcare & Human Services", Dimensions: []Dimension{Empathetic}, Threshold: BucketThreshold},
			{Label: "Business & Entrepreneurship", Dimensions: []Dimension{Verbal, Independent}, Threshold: BucketThreshold},
			{Label: "Skilled Trades & Engineering", Dimensions: []Dimension{Physical}, Threshold: BucketThreshold},
			{Label: "Operations & Finance", Dimensions: []Dimension{Systematic}, Threshold: BucketThreshold},
		},
		BucketFallback: "General Skills & Adaptability",
	}
}
