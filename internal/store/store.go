package store

import (
	"context"
	"errors"

	"github.com/mind-engage/mathquiz/internal/eval"
	"github.com/mind-engage/mathquiz/internal/quiz"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrEvaluationNotFound = errors.New("evaluation not found")
)

// EvaluationRecord is one persisted grading run.
type EvaluationRecord struct {
	ID         string              `json:"id"`
	QuizID     string              `json:"quiz_id"`
	UserID     string              `json:"user_id"`
	Submission quiz.Submission     `json:"submission"`
	Result     eval.QuizEvaluation `json:"result"`
	CreatedAt  int64               `json:"created_at"`
}

type ListOpts struct {
	QuizID string
	UserID string
	Limit  int
	Offset int
}

// Store persists quizzes keyed by id plus completed evaluations.
type Store interface {
	PutQuiz(ctx context.Context, z quiz.Quiz) error
	GetQuiz(ctx context.Context, id string) (quiz.Quiz, error)      // student-safe (no answers)
	GetQuizAdmin(ctx context.Context, id string) (quiz.Quiz, error) // full document

	PutEvaluation(ctx context.Context, rec EvaluationRecord) error
	GetEvaluation(ctx context.Context, id string) (EvaluationRecord, error)
	ListEvaluations(ctx context.Context, opts ListOpts) ([]EvaluationRecord, error)
}
