package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mathquiz/internal/quiz"
	"github.com/mind-engage/mathquiz/internal/rbac"
	"github.com/mind-engage/mathquiz/internal/store"
)

// POST /quizzes
func UploadQuizHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var z quiz.Quiz
		if err := json.NewDecoder(r.Body).Decode(&z); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(z.ID) == "" {
			http.Error(w, "quiz id required", http.StatusBadRequest)
			return
		}
		z.Canonicalize()
		if err := st.PutQuiz(r.Context(), z); err != nil {
			http.Error(w, "store quiz: "+err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": z.ID})
	}
}

// GET /quizzes/{quizID}
// Roles with quiz:view-answers get the full document; everyone else gets the
// student-safe view with answers stripped.
func GetQuizHandler(st store.Store) http.HandlerFunc {
	checker := rbac.NewChecker(nil)
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "quizID")
		var (
			z   quiz.Quiz
			err error
		)
		if checker.Has(rbac.RoleFromContext(r.Context()), "quiz:view-answers") {
			z, err = st.GetQuizAdmin(r.Context(), id)
		} else {
			z, err = st.GetQuiz(r.Context(), id)
		}
		if err != nil {
			if errors.Is(err, store.ErrQuizNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(z)
	}
}
