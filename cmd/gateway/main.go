package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mind-engage/mathquiz/internal/api/http"
	auth "github.com/mind-engage/mathquiz/internal/auth/middleware"
	"github.com/mind-engage/mathquiz/internal/config"
	"github.com/mind-engage/mathquiz/internal/db"
	"github.com/mind-engage/mathquiz/internal/eval"
	"github.com/mind-engage/mathquiz/internal/rbac"
	"github.com/mind-engage/mathquiz/internal/stepgrader"
	"github.com/mind-engage/mathquiz/internal/store"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	st := store.NewSQLStore(dbh, cfg.DBDriver)

	// --- Evaluation engine ---
	opts := []eval.Option{}
	if cfg.StepGraderURL != "" {
		opts = append(opts, eval.WithStepGrader(
			stepgrader.New(cfg.StepGraderURL, cfg.StepGraderAPIKey, cfg.StepGraderTimeout)))
	} else {
		log.Println("step grader not configured; open-ended questions score on final answers only")
	}
	engine := eval.NewEngine(opts...)

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret, cfg.TeacherUser, cfg.TeacherPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second)) // open-ended grading waits on the external grader

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc))

	// Protected API (JWT -> role in context -> RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.With(rbac.Require("quiz:create")).
			Post("/quizzes", api.UploadQuizHandler(st))
		pr.With(rbac.Require("quiz:view")).
			Get("/quizzes/{quizID}", api.GetQuizHandler(st))

		pr.With(rbac.Require("quiz:evaluate")).
			Post("/quizzes/{quizID}/evaluations", api.EvaluateQuizHandler(st, engine))
		pr.With(rbac.RequireAny("evaluation:view-own", "evaluation:view-all")).
			Get("/quizzes/{quizID}/evaluations", api.ListEvaluationsHandler(st))
		pr.With(rbac.RequireAny("evaluation:view-own", "evaluation:view-all")).
			Get("/evaluations/{evalID}", api.GetEvaluationHandler(st))
	})

	log.Printf("gateway listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
