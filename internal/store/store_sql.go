package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/mind-engage/mathquiz/internal/quiz"
)

// SQLStore works against both the sqlite and postgres schemas from
// internal/db. Questions and results are stored as JSON documents; the
// handful of columns pulled out of result_json exist for listing and
// dashboards only.
type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutQuiz(ctx context.Context, z quiz.Quiz) error {
	// Canonicalize a copy; the caller's questions stay untouched.
	z.Questions = append([]quiz.Question(nil), z.Questions...)
	z.Canonicalize()
	qj, err := json.Marshal(z.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO quizzes (id,title,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		z.ID, z.Title, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetQuiz(ctx context.Context, id string) (quiz.Quiz, error) {
	z, err := s.GetQuizAdmin(ctx, id)
	if err != nil {
		return quiz.Quiz{}, err
	}
	return z.StudentView(), nil
}

func (s *SQLStore) GetQuizAdmin(ctx context.Context, id string) (quiz.Quiz, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,questions_json,created_at FROM quizzes WHERE id=$1`, id)
	var z quiz.Quiz
	var qjson string
	if err := row.Scan(&z.ID, &z.Title, &qjson, &z.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &z.Questions); err != nil {
		return quiz.Quiz{}, err
	}
	// Legacy documents may predate the type tag.
	z.Canonicalize()
	return z, nil
}

func (s *SQLStore) PutEvaluation(ctx context.Context, rec EvaluationRecord) error {
	sj, err := json.Marshal(rec.Submission)
	if err != nil {
		return err
	}
	rj, err := json.Marshal(rec.Result)
	if err != nil {
		return err
	}
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO evaluations
		(id,quiz_id,user_id,submission_json,result_json,marks_awarded,max_marks,percentage,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		rec.ID, rec.QuizID, rec.UserID, string(sj), string(rj),
		rec.Result.MarksAwarded, rec.Result.MaxMarks, rec.Result.Percentage, rec.CreatedAt)
	return err
}

func (s *SQLStore) GetEvaluation(ctx context.Context, id string) (EvaluationRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,quiz_id,user_id,submission_json,result_json,created_at
		FROM evaluations WHERE id=$1`, id)
	rec, err := scanEvaluation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return EvaluationRecord{}, ErrEvaluationNotFound
	}
	return rec, err
}

func (s *SQLStore) ListEvaluations(ctx context.Context, opts ListOpts) ([]EvaluationRecord, error) {
	q := `SELECT id,quiz_id,user_id,submission_json,result_json,created_at FROM evaluations WHERE 1=1`
	args := []interface{}{}
	n := 0
	add := func(cond string, v interface{}) {
		n++
		q += cond + placeholder(n)
		args = append(args, v)
	}
	if opts.QuizID != "" {
		add(` AND quiz_id=`, opts.QuizID)
	}
	if opts.UserID != "" {
		add(` AND user_id=`, opts.UserID)
	}
	q += ` ORDER BY created_at DESC`
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	add(` LIMIT `, limit)
	if opts.Offset > 0 {
		add(` OFFSET `, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []EvaluationRecord
	for rows.Next() {
		rec, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEvaluation(row scanner) (EvaluationRecord, error) {
	var rec EvaluationRecord
	var sj, rj string
	if err := row.Scan(&rec.ID, &rec.QuizID, &rec.UserID, &sj, &rj, &rec.CreatedAt); err != nil {
		return EvaluationRecord{}, err
	}
	if err := json.Unmarshal([]byte(sj), &rec.Submission); err != nil {
		return EvaluationRecord{}, err
	}
	if err := json.Unmarshal([]byte(rj), &rec.Result); err != nil {
		return EvaluationRecord{}, err
	}
	return rec, nil
}

// $N placeholders work for pgx and for modernc sqlite alike.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
