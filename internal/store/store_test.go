package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mind-engage/mathquiz/internal/db"
	"github.com/mind-engage/mathquiz/internal/eval"
	"github.com/mind-engage/mathquiz/internal/quiz"
	"github.com/mind-engage/mathquiz/internal/store"
)

func sampleQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:    "quiz-1",
		Title: "Quadratics",
		Questions: []quiz.Question{
			{
				ID:    "q1",
				Marks: 2,
				Options: []quiz.MCQOption{
					{ID: "a", Label: "x=1", Correct: true},
					{ID: "b", Label: "x=2"},
				},
			},
			{
				ID:          "q2",
				Type:        quiz.TypeOpenEnded,
				Marks:       5,
				AnswerBoxes: []quiz.AnswerBox{{ID: "f1", Answer: "x=-2,-3"}},
			},
		},
	}
}

func stores(t *testing.T) map[string]store.Store {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.TempDir()+"/test.db?_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })
	return map[string]store.Store{
		"memory": store.NewInMemoryStore(),
		"sqlite": store.NewSQLStore(dbh, "sqlite"),
	}
}

func TestQuizRoundTrip(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := st.PutQuiz(ctx, sampleQuiz()); err != nil {
				t.Fatal(err)
			}

			full, err := st.GetQuizAdmin(ctx, "quiz-1")
			if err != nil {
				t.Fatal(err)
			}
			if len(full.Questions) != 2 || full.Questions[1].AnswerBoxes[0].Answer != "x=-2,-3" {
				t.Fatalf("admin view: %+v", full)
			}
			// type tag backfilled on load
			if full.Questions[0].Type != quiz.TypeMCQ {
				t.Fatalf("type = %s, want mcq", full.Questions[0].Type)
			}

			safe, err := st.GetQuiz(ctx, "quiz-1")
			if err != nil {
				t.Fatal(err)
			}
			if safe.Questions[1].AnswerBoxes[0].Answer != "" || safe.Questions[0].Options[0].Correct {
				t.Fatalf("student view leaked answers: %+v", safe)
			}

			if _, err := st.GetQuiz(ctx, "nope"); !errors.Is(err, store.ErrQuizNotFound) {
				t.Fatalf("err = %v, want ErrQuizNotFound", err)
			}
		})
	}
}

func TestPutQuizDoesNotMutateInput(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			z := sampleQuiz() // q1 carries no explicit type tag
			if err := st.PutQuiz(context.Background(), z); err != nil {
				t.Fatal(err)
			}
			if z.Questions[0].Type != "" {
				t.Fatalf("PutQuiz backfilled the caller's question type: %s", z.Questions[0].Type)
			}
		})
	}
}

func TestEvaluationRoundTrip(t *testing.T) {
	for name, st := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := st.PutQuiz(ctx, sampleQuiz()); err != nil {
				t.Fatal(err)
			}

			rec := store.EvaluationRecord{
				ID:         "eval-1",
				QuizID:     "quiz-1",
				UserID:     "alice",
				Submission: quiz.Submission{"q1": {SelectedOption: "a"}},
				Result: eval.QuizEvaluation{
					Results:      []eval.Result{{QuestionID: "q1", Correct: true, Status: eval.StatusCorrect, MarksAwarded: 2, MaxMarks: 2}},
					Score:        1,
					MaxScore:     1,
					MarksAwarded: 2,
					MaxMarks:     2,
					Percentage:   100,
				},
			}
			if err := st.PutEvaluation(ctx, rec); err != nil {
				t.Fatal(err)
			}

			got, err := st.GetEvaluation(ctx, "eval-1")
			if err != nil {
				t.Fatal(err)
			}
			if got.UserID != "alice" || got.Result.Percentage != 100 || got.CreatedAt == 0 {
				t.Fatalf("round trip: %+v", got)
			}
			if got.Submission["q1"].SelectedOption != "a" {
				t.Fatalf("submission lost: %+v", got.Submission)
			}

			byQuiz, err := st.ListEvaluations(ctx, store.ListOpts{QuizID: "quiz-1"})
			if err != nil || len(byQuiz) != 1 {
				t.Fatalf("list by quiz: %v %v", byQuiz, err)
			}
			byUser, err := st.ListEvaluations(ctx, store.ListOpts{QuizID: "quiz-1", UserID: "bob"})
			if err != nil || len(byUser) != 0 {
				t.Fatalf("list by other user: %v %v", byUser, err)
			}

			if _, err := st.GetEvaluation(ctx, "nope"); !errors.Is(err, store.ErrEvaluationNotFound) {
				t.Fatalf("err = %v, want ErrEvaluationNotFound", err)
			}
		})
	}
}
