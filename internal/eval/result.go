package eval

import "math"

// Status classifies a single question's outcome.
type Status string

const (
	StatusCorrect   Status = "correct"
	StatusPartial   Status = "partially_correct"
	StatusIncorrect Status = "incorrect"
)

// StepEvaluation is the verdict on one working step. Step always holds the
// student's original text, never the grader's echo of it.
type StepEvaluation struct {
	Index    int    `json:"index"`
	Step     string `json:"step"`
	Correct  bool   `json:"correct"`
	Feedback string `json:"feedback,omitempty"`
	Marks    int    `json:"marks,omitempty"`
}

// Result is the outcome of evaluating a single question.
type Result struct {
	QuestionID string `json:"question_id"`
	Correct    bool   `json:"correct"`
	Status     Status `json:"status"`

	StudentAnswers []string `json:"student_answers,omitempty"`
	CorrectAnswers []string `json:"correct_answers,omitempty"`

	FinalAnswerMatched bool             `json:"final_answer_matched"`
	Steps              []StepEvaluation `json:"steps,omitempty"`
	ModelAnswer        []string         `json:"model_answer,omitempty"`
	CorrectPoints      []string         `json:"correct_points,omitempty"`
	ImprovementPoints  []string         `json:"improvement_points,omitempty"`

	MarksAwarded int    `json:"marks_awarded"`
	MaxMarks     int    `json:"max_marks"`
	Feedback     string `json:"feedback,omitempty"`
}

// QuizEvaluation folds per-question results into the overall report.
type QuizEvaluation struct {
	Results []Result `json:"results"`

	Score    int `json:"score"`     // fully-correct questions
	MaxScore int `json:"max_score"` // question count

	MarksAwarded int `json:"marks_awarded"`
	MaxMarks     int `json:"max_marks"`
	Percentage   int `json:"percentage"`
}

// roundMarks is the single rounding rule for partial credit: half away from
// zero, clamped to [0, max].
func roundMarks(v float64, max int) int {
	n := int(math.Round(v))
	if n < 0 {
		n = 0
	}
	if n > max {
		n = max
	}
	return n
}
