package quiz_test

import (
	"testing"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

func TestCanonicalizeBackfillsType(t *testing.T) {
	cases := []struct {
		name string
		q    quiz.Question
		want quiz.QuestionType
	}{
		{"explicit tag wins", quiz.Question{Type: quiz.TypeOpenEnded, Options: []quiz.MCQOption{{ID: "a"}}}, quiz.TypeOpenEnded},
		{"options imply mcq", quiz.Question{Options: []quiz.MCQOption{{ID: "a"}}}, quiz.TypeMCQ},
		{"segments imply fill-in-blank", quiz.Question{Segments: []quiz.Segment{{Kind: "blank", BoxID: "b1"}}}, quiz.TypeFillBlank},
		{"default open-ended", quiz.Question{}, quiz.TypeOpenEnded},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			c.q.Canonicalize()
			if c.q.Type != c.want {
				t.Errorf("type = %s, want %s", c.q.Type, c.want)
			}
		})
	}
}

func TestCanonicalizeDefaultsMarks(t *testing.T) {
	q := quiz.Question{}
	q.Canonicalize()
	if q.Marks != 1 {
		t.Fatalf("marks = %d, want 1", q.Marks)
	}
	q = quiz.Question{Marks: 5}
	q.Canonicalize()
	if q.Marks != 5 {
		t.Fatalf("marks = %d, want 5", q.Marks)
	}
}

func TestStudentViewStripsAnswers(t *testing.T) {
	z := quiz.Quiz{
		ID: "z1",
		Questions: []quiz.Question{
			{
				ID:          "q1",
				AnswerBoxes: []quiz.AnswerBox{{ID: "b1", Answer: "42"}},
				Options:     []quiz.MCQOption{{ID: "a", Correct: true}, {ID: "b"}},
			},
		},
	}
	sv := z.StudentView()
	if sv.Questions[0].AnswerBoxes[0].Answer != "" {
		t.Fatal("answer box value leaked to student view")
	}
	for _, o := range sv.Questions[0].Options {
		if o.Correct {
			t.Fatal("correct flag leaked to student view")
		}
	}
	// original untouched
	if z.Questions[0].AnswerBoxes[0].Answer != "42" || !z.Questions[0].Options[0].Correct {
		t.Fatal("StudentView mutated the original quiz")
	}
}
