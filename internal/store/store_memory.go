package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// memoryStore backs tests and single-process dev runs.
type memoryStore struct {
	mu          sync.RWMutex
	quizzes     map[string]quiz.Quiz
	evaluations map[string]EvaluationRecord
}

func NewInMemoryStore() Store {
	return &memoryStore{
		quizzes:     map[string]quiz.Quiz{},
		evaluations: map[string]EvaluationRecord{},
	}
}

func (m *memoryStore) PutQuiz(_ context.Context, z quiz.Quiz) error {
	// Canonicalize a copy; the caller's questions stay untouched.
	z.Questions = append([]quiz.Question(nil), z.Questions...)
	z.Canonicalize()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[z.ID] = z
	return nil
}

func (m *memoryStore) GetQuiz(ctx context.Context, id string) (quiz.Quiz, error) {
	z, err := m.GetQuizAdmin(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return z.StudentView(), nil
}

func (m *memoryStore) GetQuizAdmin(_ context.Context, id string) (quiz.Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	z, ok := m.quizzes[id]
	if !ok {
		return quiz.Quiz{}, ErrQuizNotFound
	}
	return z, nil
}

func (m *memoryStore) PutEvaluation(_ context.Context, rec EvaluationRecord) error {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.evaluations[rec.ID] = rec
	return nil
}

func (m *memoryStore) GetEvaluation(_ context.Context, id string) (EvaluationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.evaluations[id]
	if !ok {
		return EvaluationRecord{}, ErrEvaluationNotFound
	}
	return rec, nil
}

func (m *memoryStore) ListEvaluations(_ context.Context, opts ListOpts) ([]EvaluationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]EvaluationRecord, 0)
	for _, rec := range m.evaluations {
		if opts.QuizID != "" && rec.QuizID != opts.QuizID {
			continue
		}
		if opts.UserID != "" && rec.UserID != opts.UserID {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}
