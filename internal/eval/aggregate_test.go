package eval_test

import (
	"context"
	"testing"

	"github.com/mind-engage/mathquiz/internal/eval"
	"github.com/mind-engage/mathquiz/internal/quiz"
)

func TestEvaluateQuizEmpty(t *testing.T) {
	e := eval.NewEngine()
	out, err := e.EvaluateQuiz(context.Background(), quiz.Quiz{ID: "empty"}, quiz.Submission{})
	if err != nil {
		t.Fatal(err)
	}
	if out.MaxMarks != 0 || out.Percentage != 0 {
		t.Fatalf("empty quiz: max=%d pct=%d, want 0/0", out.MaxMarks, out.Percentage)
	}
	if len(out.Results) != 0 || out.MaxScore != 0 {
		t.Fatalf("empty quiz: %+v", out)
	}
}

func TestEvaluateQuizMixed(t *testing.T) {
	g := &fakeGrader{result: stepVerdicts(true, false)}
	e := eval.NewEngine(eval.WithStepGrader(g))

	z := quiz.Quiz{
		ID:    "quiz-1",
		Title: "Algebra check",
		Questions: []quiz.Question{
			mcqQuestion(2), // q1, selecting "b" is correct
			{
				ID:    "q2",
				Type:  quiz.TypeFillBlank,
				Marks: 3,
				AnswerBoxes: []quiz.AnswerBox{
					{ID: "b1", Answer: "x+1"},
					{ID: "b2", Answer: "7"},
				},
			},
			{
				ID:          "q3",
				Type:        quiz.TypeOpenEnded,
				Marks:       10,
				AnswerBoxes: []quiz.AnswerBox{{ID: "f1", Answer: "x=5"}},
			},
		},
	}
	sub := quiz.Submission{
		"q1": {SelectedOption: "b"},
		"q2": {BoxValues: map[string]string{"b1": "x + 1", "b2": "9"}},
		"q3": {Steps: []string{"2x=10", "x=6"}, FinalByBox: map[string]string{"f1": "x=6"}},
	}

	out, err := e.EvaluateQuiz(context.Background(), z, sub)
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(out.Results))
	}
	// order preserved
	for i, id := range []string{"q1", "q2", "q3"} {
		if out.Results[i].QuestionID != id {
			t.Fatalf("result %d is %s, want %s", i, out.Results[i].QuestionID, id)
		}
	}
	if out.Score != 1 || out.MaxScore != 3 {
		t.Fatalf("score = %d/%d, want 1/3", out.Score, out.MaxScore)
	}
	// q1: 2, q2: round(3*1/2)=2, q3: round(10*0.7*1/2)=4
	if out.MarksAwarded != 8 || out.MaxMarks != 15 {
		t.Fatalf("marks = %d/%d, want 8/15", out.MarksAwarded, out.MaxMarks)
	}
	if out.Percentage != 53 { // round(100*8/15)
		t.Fatalf("percentage = %d, want 53", out.Percentage)
	}
}

func TestEvaluateQuizLegacyTypeInference(t *testing.T) {
	// Questions without a type tag are inferred from shape at evaluation time.
	e := eval.NewEngine()
	z := quiz.Quiz{
		ID: "legacy",
		Questions: []quiz.Question{
			{
				ID:    "m1",
				Marks: 1,
				Options: []quiz.MCQOption{
					{ID: "a", Label: "1", Correct: true},
					{ID: "b", Label: "2"},
				},
			},
		},
	}
	out, err := e.EvaluateQuiz(context.Background(), z, quiz.Submission{"m1": {SelectedOption: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	if out.Score != 1 || out.MarksAwarded != 1 {
		t.Fatalf("legacy mcq not inferred: %+v", out)
	}
	// input quiz untouched
	if z.Questions[0].Type != "" {
		t.Fatal("EvaluateQuiz mutated its input")
	}
}

func TestEvaluateQuizCancellation(t *testing.T) {
	e := eval.NewEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.EvaluateQuiz(ctx, quiz.Quiz{Questions: []quiz.Question{mcqQuestion(1)}}, nil); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
