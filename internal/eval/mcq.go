package eval

import (
	"context"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// mcqStrategy marks binary: the submitted option id either is the flagged
// correct option or it is not.
type mcqStrategy struct{}

func (mcqStrategy) Evaluate(_ context.Context, q quiz.Question, ans quiz.Answer) Result {
	if len(q.Options) == 0 {
		return dataIntegrityResult(q, "multiple-choice question has no options")
	}
	correct, ok := q.CorrectOption()
	if !ok {
		return dataIntegrityResult(q, "multiple-choice question has no option flagged correct")
	}

	res := Result{
		QuestionID:     q.ID,
		StudentAnswers: []string{labelFor(q, ans.SelectedOption)},
		CorrectAnswers: []string{correct.Label},
		MaxMarks:       maxMarks(q),
	}
	if ans.SelectedOption != "" && ans.SelectedOption == correct.ID {
		res.Correct = true
		res.Status = StatusCorrect
		res.FinalAnswerMatched = true
		res.MarksAwarded = res.MaxMarks
		res.Feedback = "Correct."
	} else {
		res.Status = StatusIncorrect
		res.Feedback = "Incorrect option selected."
	}
	return res
}

func labelFor(q quiz.Question, optionID string) string {
	for _, o := range q.Options {
		if o.ID == optionID {
			return o.Label
		}
	}
	return ""
}
