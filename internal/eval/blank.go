package eval

import (
	"context"
	"fmt"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// blankStrategy awards proportional credit across answer boxes:
// round(max * correct/total).
type blankStrategy struct{}

func (blankStrategy) Evaluate(_ context.Context, q quiz.Question, ans quiz.Answer) Result {
	if len(q.AnswerBoxes) == 0 {
		return dataIntegrityResult(q, "fill-in-the-blank question has no answer boxes")
	}

	max := maxMarks(q)
	res := Result{QuestionID: q.ID, MaxMarks: max}

	matched := 0
	for _, b := range q.AnswerBoxes {
		v := ans.BoxValues[b.ID]
		res.StudentAnswers = append(res.StudentAnswers, v)
		res.CorrectAnswers = append(res.CorrectAnswers, b.Answer)
		if Equivalent(v, b.Answer) {
			matched++
		}
	}

	total := len(q.AnswerBoxes)
	res.MarksAwarded = roundMarks(float64(max)*float64(matched)/float64(total), max)
	switch {
	case matched == total:
		res.Correct = true
		res.Status = StatusCorrect
		res.FinalAnswerMatched = true
		res.Feedback = "All blanks correct."
	case matched == 0:
		res.Status = StatusIncorrect
		res.Feedback = "No blanks correct."
	default:
		res.Status = StatusPartial
		res.Feedback = fmt.Sprintf("%d of %d blanks correct.", matched, total)
	}
	return res
}
