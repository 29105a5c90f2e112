package eval

import (
	"context"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// GradeRequest is what the step-grading collaborator needs to judge
// free-form working: the question summary, the cleaned steps and the final
// answers on both sides.
type GradeRequest struct {
	Question     string
	Steps        []string
	StudentFinal []string
	CorrectFinal []string
}

// GradingResult is the normalized shape of a step-grading response,
// whichever wire generation produced it.
type GradingResult struct {
	Steps             []StepEvaluation
	ModelAnswer       []string
	CorrectPoints     []string
	ImprovementPoints []string
}

// StepGrader is the external AI collaborator that judges working steps.
// Implementations return an error for transport or configuration failures;
// the engine degrades to final-answer-only scoring in that case.
type StepGrader interface {
	GradeSteps(ctx context.Context, req GradeRequest) (*GradingResult, error)
}

// Strategy evaluates a single question of one type.
type Strategy interface {
	Evaluate(ctx context.Context, q quiz.Question, ans quiz.Answer) Result
}

// Engine routes each question to the Strategy for its canonical type and
// aggregates whole-quiz results. It never mutates its inputs.
type Engine struct {
	strategies map[quiz.QuestionType]Strategy
}

type Option func(*config)

type config struct {
	MethodWeight float64    // cap on step credit when the final answer is wrong
	Grader       StepGrader // optional; nil disables step grading
}

func WithMethodMarkWeight(w float64) Option { return func(c *config) { c.MethodWeight = w } }
func WithStepGrader(g StepGrader) Option    { return func(c *config) { c.Grader = g } }

// NewEngine installs the built-in strategies.
func NewEngine(opts ...Option) *Engine {
	cfg := &config{MethodWeight: MethodMarkWeight}
	for _, o := range opts {
		o(cfg)
	}
	return &Engine{
		strategies: map[quiz.QuestionType]Strategy{
			quiz.TypeMCQ:       mcqStrategy{},
			quiz.TypeFillBlank: blankStrategy{},
			quiz.TypeOpenEnded: openEndedStrategy{grader: cfg.Grader, methodWeight: cfg.MethodWeight},
		},
	}
}

// Evaluate grades one question. Unknown types fail soft with a diagnostic.
func (e *Engine) Evaluate(ctx context.Context, q quiz.Question, ans quiz.Answer) Result {
	s, ok := e.strategies[q.Type]
	if !ok {
		return dataIntegrityResult(q, "question has no recognizable type")
	}
	return s.Evaluate(ctx, q, ans)
}

// dataIntegrityResult is the zero-mark outcome for questions missing the
// fields their type requires. Never an error: one broken question must not
// abort the rest of the quiz.
func dataIntegrityResult(q quiz.Question, msg string) Result {
	return Result{
		QuestionID:   q.ID,
		Status:       StatusIncorrect,
		MarksAwarded: 0,
		MaxMarks:     maxMarks(q),
		Feedback:     msg,
	}
}

func maxMarks(q quiz.Question) int {
	if q.Marks < 1 {
		return DefaultMarks
	}
	return q.Marks
}
