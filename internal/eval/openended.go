package eval

import (
	"context"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// openEndedStrategy checks the final answer locally and, when working steps
// were submitted, asks the external step grader for method-mark detail. A
// failed grading call degrades to the local verdict; it never fails the
// question.
type openEndedStrategy struct {
	grader       StepGrader
	methodWeight float64
}

func (s openEndedStrategy) Evaluate(ctx context.Context, q quiz.Question, ans quiz.Answer) Result {
	max := maxMarks(q)
	finals := ans.FinalAnswers(&q)
	corrects := make([]string, 0, len(q.AnswerBoxes))
	for _, b := range q.AnswerBoxes {
		corrects = append(corrects, b.Answer)
	}

	res := Result{
		QuestionID:     q.ID,
		StudentAnswers: finals,
		CorrectAnswers: corrects,
		MaxMarks:       max,
	}
	res.FinalAnswerMatched = finalsMatch(finals, corrects)

	steps := quiz.CleanSteps(ans.Steps)
	if len(steps) == 0 {
		// Nothing to grade externally; score on the final answer alone.
		scoreFinalOnly(&res, max, "No working shown.")
		return res
	}

	var gr *GradingResult
	if s.grader != nil {
		gr, _ = s.grader.GradeSteps(ctx, GradeRequest{
			Question:     q.PromptText(),
			Steps:        steps,
			StudentFinal: finals,
			CorrectFinal: corrects,
		})
	}
	if gr == nil {
		scoreFinalOnly(&res, max, "Step-level feedback is unavailable for this attempt.")
		return res
	}

	res.Steps = gr.Steps
	res.ModelAnswer = gr.ModelAnswer
	res.CorrectPoints = gr.CorrectPoints
	res.ImprovementPoints = gr.ImprovementPoints

	if res.FinalAnswerMatched {
		res.Correct = true
		res.Status = StatusCorrect
		res.MarksAwarded = max
		res.Feedback = "Final answer correct."
		return res
	}

	// Method marks: credit for correct steps, capped below full value.
	if n := len(gr.Steps); n > 0 {
		correct := 0
		for _, st := range gr.Steps {
			if st.Correct {
				correct++
			}
		}
		res.MarksAwarded = roundMarks(float64(max)*s.methodWeight*float64(correct)/float64(n), max)
	}
	if res.MarksAwarded > 0 {
		res.Status = StatusPartial
		res.Feedback = "Final answer incorrect; partial credit for working."
	} else {
		res.Status = StatusIncorrect
		res.Feedback = "Final answer incorrect."
	}
	return res
}

// finalsMatch requires one submitted value per answer box, each equivalent
// in positional order. A count mismatch, or a question with no boxes at all,
// is not a match.
func finalsMatch(finals, corrects []string) bool {
	if len(corrects) == 0 || len(finals) != len(corrects) {
		return false
	}
	for i := range corrects {
		if !Equivalent(finals[i], corrects[i]) {
			return false
		}
	}
	return true
}

func scoreFinalOnly(res *Result, max int, note string) {
	if res.FinalAnswerMatched {
		res.Correct = true
		res.Status = StatusCorrect
		res.MarksAwarded = max
	} else {
		res.Status = StatusIncorrect
		res.MarksAwarded = 0
	}
	res.Feedback = note
}
