package assessment

// Question is one Likert item of the talent questionnaire.
type Question struct {
	ID        int       `json:"id"`
	Text      string    `json:"question"`
	Dimension Dimension `json:"dimension"`
}

// Bank is an immutable, ordered question catalog.
type Bank struct {
	questions []Question
	byID      map[int]Question
	max       map[Dimension]int
}

// NewBank indexes qs. Later duplicates of an id are ignored.
func NewBank(qs []Question) *Bank {
	b := &Bank{
		questions: make([]Question, 0, len(qs)),
		byID:      make(map[int]Question, len(qs)),
		max:       make(map[Dimension]int, len(Dimensions)),
	}
	for _, q := range qs {
		if _, dup := b.byID[q.ID]; dup {
			continue
		}
		b.questions = append(b.questions, q)
		b.byID[q.ID] = q
		b.max[q.Dimension] += MaxRating
	}
	return b
}

// All returns a copy of the questions in bank order.
func (b *Bank) All() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Lookup finds a question by id.
func (b *Bank) Lookup(id int) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// MaxScore is the highest raw sum attainable for d.
func (b *Bank) MaxScore(d Dimension) int { return b.max[d] }

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

const (
	MinRating = 1
	MaxRating = 5
)

// DefaultBank is the 45-question talent questionnaire: six items for each
// dimension except independent, which has three.
func DefaultBank() *Bank { return NewBank(talentQuestions) }

var talentQuestions = []Question{
	{1, "I enjoy breaking a complex problem into smaller logical steps.", Analytical},
	{2, "I often sketch, doodle, or picture ideas before I explain them.", CreativeVisual},
	{3, "I can usually tell how someone feels before they say anything.", Empathetic},
	{4, "I learn best when I can try something with my hands.", Physical},
	{5, "I enjoy explaining ideas to others in my own words.", Verbal},
	{6, "I like to plan my tasks and follow a clear schedule.", Systematic},
	{7, "I am excited by new technologies and how they will change the world.", FutureForward},
	{8, "I prefer to set my own goals rather than follow someone else's plan.", Independent},

	{9, "I like working with numbers, data, or puzzles.", Analytical},
	{10, "I notice colors, shapes, and design details that others miss.", CreativeVisual},
	{11, "Friends come to me when they need someone to listen.", Empathetic},
	{12, "I feel energized after sports, dance, or physical activity.", Physical},
	{13, "I enjoy writing stories, essays, or posts.", Verbal},
	{14, "I keep my notes, files, and workspace well organized.", Systematic},
	{15, "I often imagine what jobs will look like ten years from now.", FutureForward},

	{16, "I question assumptions until I understand the reasoning behind them.", Analytical},
	{17, "I like creating visual content such as videos, art, or layouts.", CreativeVisual},
	{18, "I care deeply about fairness and how decisions affect people.", Empathetic},
	{19, "I enjoy building, fixing, or assembling things.", Physical},
	{20, "I am comfortable speaking in front of a group.", Verbal},
	{21, "I double-check details to make sure work is accurate.", Systematic},
	{22, "I like experimenting with AI tools and new apps.", FutureForward},
	{23, "I work best when I have freedom to decide how to do a task.", Independent},

	{24, "I enjoy comparing options and weighing evidence before deciding.", Analytical},
	{25, "I can easily imagine how a room, product, or screen could look.", CreativeVisual},
	{26, "I enjoy helping others learn or solve personal problems.", Empathetic},
	{27, "I would rather move around than sit at a desk all day.", Physical},
	{28, "I like debating and persuading others.", Verbal},
	{29, "I follow step-by-step instructions carefully.", Systematic},
	{30, "I think about how to solve big future challenges like climate or health.", FutureForward},

	{31, "I like figuring out how systems and machines work.", Analytical},
	{32, "I express myself best through images, music, or design.", CreativeVisual},
	{33, "I work well in teams and help resolve conflicts.", Empathetic},
	{34, "I have good coordination and enjoy using tools.", Physical},
	{35, "I pick up new words and languages quickly.", Verbal},
	{36, "I like creating checklists, spreadsheets, or systems.", Systematic},
	{37, "I enjoy learning about startups, innovation, and emerging trends.", FutureForward},
	{38, "I am comfortable taking risks to pursue my own ideas.", Independent},

	{39, "I enjoy strategy games and logic challenges.", Analytical},
	{40, "I enjoy redesigning things to make them more beautiful.", CreativeVisual},
	{41, "I notice when someone is left out and try to include them.", Empathetic},
	{42, "I enjoy outdoor work or hands-on projects.", Physical},
	{43, "I like reading and discussing books, articles, or podcasts.", Verbal},
	{44, "I feel satisfied when a process runs smoothly because I set it up.", Systematic},
	{45, "I adapt quickly when technology or circumstances change.", FutureForward},
}
