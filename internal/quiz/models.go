package quiz

// QuestionType is the canonical discriminant for question variants.
// Legacy documents may omit it; Canonicalize backfills it from shape.
type QuestionType string

const (
	TypeMCQ       QuestionType = "mcq"
	TypeFillBlank QuestionType = "fill_in_blank"
	TypeOpenEnded QuestionType = "open_ended"
)

// ContentBlock is one ordered piece of question body, either prose or math.
type ContentBlock struct {
	Kind  string `json:"kind"` // text|math
	Value string `json:"value"`
}

// Segment is one element of a fill-in-the-blank layout: a math fragment or
// a blank marker bound to an answer box.
type Segment struct {
	Kind  string `json:"kind"` // math|blank
	Value string `json:"value,omitempty"`
	BoxID string `json:"box_id,omitempty"`
}

// AnswerBox is a named slot requiring one correct value.
type AnswerBox struct {
	ID     string `json:"id"`
	Label  string `json:"label,omitempty"`
	Answer string `json:"answer"` // correct-answer expression
}

type MCQOption struct {
	ID      string `json:"id"`
	Label   string `json:"label"` // math expression
	Correct bool   `json:"correct"`
}

type Question struct {
	ID     string       `json:"id"`
	Type   QuestionType `json:"type,omitempty"`
	Prompt string       `json:"prompt,omitempty"`

	Content  []ContentBlock `json:"content,omitempty"`
	Segments []Segment      `json:"segments,omitempty"` // fill-in-blank layout

	AnswerBoxes []AnswerBox `json:"answer_boxes,omitempty"`
	Options     []MCQOption `json:"mcq_options,omitempty"`

	Marks int `json:"marks"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
	CreatedAt int64      `json:"created_at,omitempty"`
}

// Canonicalize backfills the type discriminant and the marks default on a
// question loaded from an older document. Stored quizzes predating the
// explicit tag are identified by shape: presence of mcq_options implies mcq,
// presence of segments implies fill-in-blank, anything else is open-ended.
// Called once at load/decode time; the evaluation engine only ever sees
// canonical questions.
func (q *Question) Canonicalize() {
	if q.Marks < 1 {
		q.Marks = 1
	}
	switch q.Type {
	case TypeMCQ, TypeFillBlank, TypeOpenEnded:
		return
	}
	switch {
	case len(q.Options) > 0:
		q.Type = TypeMCQ
	case len(q.Segments) > 0:
		q.Type = TypeFillBlank
	default:
		q.Type = TypeOpenEnded
	}
}

// Canonicalize normalizes every question in place. Safe to call repeatedly.
func (z *Quiz) Canonicalize() {
	for i := range z.Questions {
		z.Questions[i].Canonicalize()
	}
}

// StudentView returns a copy with correct answers and option flags removed,
// safe to serve to students. The receiver is left untouched.
func (z Quiz) StudentView() Quiz {
	out := z
	out.Questions = make([]Question, len(z.Questions))
	for i, q := range z.Questions {
		if len(q.AnswerBoxes) > 0 {
			boxes := make([]AnswerBox, len(q.AnswerBoxes))
			for j, b := range q.AnswerBoxes {
				b.Answer = ""
				boxes[j] = b
			}
			q.AnswerBoxes = boxes
		}
		if len(q.Options) > 0 {
			opts := make([]MCQOption, len(q.Options))
			for j, o := range q.Options {
				o.Correct = false
				opts[j] = o
			}
			q.Options = opts
		}
		out.Questions[i] = q
	}
	return out
}

// CorrectOption returns the option flagged correct, if any.
func (q *Question) CorrectOption() (MCQOption, bool) {
	for _, o := range q.Options {
		if o.Correct {
			return o, true
		}
	}
	return MCQOption{}, false
}

// PromptText flattens the prompt plus text/math content blocks into the plain
// summary sent to the step-grading service.
func (q *Question) PromptText() string {
	out := q.Prompt
	for _, b := range q.Content {
		if b.Value == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += b.Value
	}
	return out
}
