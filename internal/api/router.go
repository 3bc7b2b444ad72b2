package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/feedbacklabs/feedback-engine/internal/api/handlers"
	"github.com/feedbacklabs/feedback-engine/internal/api/middleware"
	"github.com/feedbacklabs/feedback-engine/internal/cache"
	"github.com/feedbacklabs/feedback-engine/internal/config"
	"github.com/feedbacklabs/feedback-engine/internal/generate"
	"github.com/feedbacklabs/feedback-engine/internal/review"
	"github.com/feedbacklabs/feedback-engine/internal/store"
)

type Router struct {
	mux       *chi.Mux
	store     store.Store
	db        *pgxpool.Pool // nil with the JSON backend
	redis     *redis.Client // nil when Redis is not configured
	cfg       *config.Config
	gen       generate.Generator
	respCache *cache.Cache
}

// NewRouter wires the configured generator chain. Redis, when present,
// adds a response cache in front of it; when absent the chain works the
// same without one.
func NewRouter(st store.Store, db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	gen := generate.FromConfig(cfg.Generator)

	var respCache *cache.Cache
	if rdb != nil {
		respCache = cache.NewCache(rdb)
		gen = generate.WithCache(gen, respCache, cfg.Generator.CacheTTL)
	}

	return &Router{
		mux:       chi.NewRouter(),
		store:     st,
		db:        db,
		redis:     rdb,
		cfg:       cfg,
		gen:       gen,
		respCache: respCache,
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints
	health := handlers.NewHealthHandler(rt.db, rt.redis, rt.cfg.Store.Backend)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	reviewSvc := review.NewService(rt.store)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		promptH := handlers.NewPromptHandler(rt.store, rt.gen, rt.respCache)
		r.Route("/prompts", func(r chi.Router) {
			r.Get("/", promptH.List)
			r.Post("/", promptH.Create)
			r.Post("/response", promptH.AttachResponse)
			r.Post("/generate", promptH.Generate)
		})

		evalH := handlers.NewEvaluationHandler(rt.store, reviewSvc)
		r.Route("/evaluations", func(r chi.Router) {
			r.Get("/", evalH.List)
			r.Post("/", evalH.Create)
			r.Get("/stats", evalH.Stats)
		})

		reviewH := handlers.NewReviewHandler(reviewSvc)
		r.Route("/review", func(r chi.Router) {
			r.Get("/", reviewH.View)
			r.Get("/next-unrated", reviewH.NextUnrated)
			r.Get("/progress", reviewH.Progress)
		})
	})

	return r
}
