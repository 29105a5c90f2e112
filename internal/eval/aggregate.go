package eval

import (
	"context"
	"math"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// EvaluateQuiz grades every question in declared order and folds the results
// into one report. Questions are processed sequentially: open-ended grading
// suspends on its external call before the next question starts, which
// bounds load on the grader and keeps result order deterministic. The whole
// call is cancellable via ctx as a single unit.
func (e *Engine) EvaluateQuiz(ctx context.Context, z quiz.Quiz, sub quiz.Submission) (QuizEvaluation, error) {
	out := QuizEvaluation{
		Results:  make([]Result, 0, len(z.Questions)),
		MaxScore: len(z.Questions),
	}
	for _, q := range z.Questions {
		if err := ctx.Err(); err != nil {
			return QuizEvaluation{}, err
		}
		q.Canonicalize()
		res := e.Evaluate(ctx, q, sub[q.ID])
		out.Results = append(out.Results, res)

		if res.Correct {
			out.Score++
		}
		out.MarksAwarded += res.MarksAwarded
		out.MaxMarks += res.MaxMarks
	}
	if out.MaxMarks > 0 {
		out.Percentage = int(math.Round(100 * float64(out.MarksAwarded) / float64(out.MaxMarks)))
	}
	return out, nil
}
