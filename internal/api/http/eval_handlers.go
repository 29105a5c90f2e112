package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	authmw "github.com/mind-engage/mathquiz/internal/auth/middleware"
	"github.com/mind-engage/mathquiz/internal/eval"
	"github.com/mind-engage/mathquiz/internal/quiz"
	"github.com/mind-engage/mathquiz/internal/rbac"
	"github.com/mind-engage/mathquiz/internal/store"
)

type evaluateReq struct {
	// Answers is the raw sub-key wire form: question id -> sub-key -> value.
	Answers quiz.RawSubmission `json:"answers"`
}

// POST /quizzes/{quizID}/evaluations
// Runs the engine over the submission, persists the report and returns it.
func EvaluateQuizHandler(st store.Store, engine *eval.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		quizID := chi.URLParam(r, "quizID")
		var req evaluateReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}

		z, err := st.GetQuizAdmin(r.Context(), quizID)
		if err != nil {
			if errors.Is(err, store.ErrQuizNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		sub := req.Answers.Decode()
		result, err := engine.EvaluateQuiz(r.Context(), z, sub)
		if err != nil {
			// Only context cancellation reaches here; per-question failures
			// degrade inside the engine.
			http.Error(w, "evaluation aborted: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		rec := store.EvaluationRecord{
			ID:         uuid.NewString(),
			QuizID:     quizID,
			UserID:     authmw.SubjectFromContext(r.Context()),
			Submission: sub,
			Result:     result,
		}
		if err := st.PutEvaluation(r.Context(), rec); err != nil {
			http.Error(w, "store evaluation: "+err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /evaluations/{evalID}
func GetEvaluationHandler(st store.Store) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := st.GetEvaluation(r.Context(), chi.URLParam(r, "evalID"))
		if err != nil {
			if errors.Is(err, store.ErrEvaluationNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		sub := authmw.SubjectFromContext(r.Context())
		role := rbac.RoleFromContext(r.Context())
		if rec.UserID != sub && !checker.Has(role, "evaluation:view-all") {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /quizzes/{quizID}/evaluations
// Teachers see every attempt for the quiz; students see their own.
func ListEvaluationsHandler(st store.Store) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		opts := store.ListOpts{QuizID: chi.URLParam(r, "quizID")}
		role := rbac.RoleFromContext(r.Context())
		if !checker.Has(role, "evaluation:view-all") {
			opts.UserID = authmw.SubjectFromContext(r.Context())
		}
		recs, err := st.ListEvaluations(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if recs == nil {
			recs = []store.EvaluationRecord{}
		}
		_ = json.NewEncoder(w).Encode(recs)
	}
}
