package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/blaisecz/wellbeing-tracker/docs"
	"github.com/blaisecz/wellbeing-tracker/internal/api/handler"
	"github.com/blaisecz/wellbeing-tracker/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	User      *handler.UserHandler
	Mood      *handler.MoodHandler
	Sleep     *handler.SleepHandler
	Journal   *handler.JournalHandler
	Community *handler.CommunityHandler
	Therapist *handler.TherapistHandler
	Meme      *handler.MemeHandler
	Breathing *handler.BreathingHandler
	Focus     *handler.FocusHandler
	Narrative *handler.NarrativeHandler
}

type Router struct {
	handlers    Handlers
	logger      *zap.Logger
	chatLimiter *middleware.RateLimiter
	corsOrigins []string
}

func NewRouter(handlers Handlers, logger *zap.Logger, chatLimiter *middleware.RateLimiter, corsOrigins []string) *Router {
	return &Router{
		handlers:    handlers,
		logger:      logger,
		chatLimiter: chatLimiter,
		corsOrigins: corsOrigins,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()
	h := rt.handlers

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.Tracing)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: rt.corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Retry-After", "X-Request-Id"},
		MaxAge:         300,
	}).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.User.Create)

			r.Route("/{userId}", func(r chi.Router) {
				r.Get("/", h.User.GetByID)
				r.Put("/profile", h.User.UpdateProfile)

				r.Route("/moods", func(r chi.Router) {
					r.Post("/", h.Mood.Create)
					r.Get("/", h.Mood.List)
					r.Get("/analytics", h.Mood.Analytics)
					r.Get("/{moodId}", h.Mood.Get)
					r.Put("/{moodId}", h.Mood.Update)
					r.Delete("/{moodId}", h.Mood.Delete)
				})

				r.Route("/sleep", func(r chi.Router) {
					r.Post("/", h.Sleep.Create)
					r.Get("/", h.Sleep.List)
					r.Get("/analytics", h.Sleep.Analytics)
					r.Get("/{sleepId}", h.Sleep.Get)
					r.Put("/{sleepId}", h.Sleep.Update)
					r.Delete("/{sleepId}", h.Sleep.Delete)
				})

				r.Route("/journal", func(r chi.Router) {
					r.Post("/", h.Journal.Create)
					r.Get("/", h.Journal.List)
					r.Get("/{entryId}", h.Journal.Get)
					r.Put("/{entryId}", h.Journal.Update)
					r.Delete("/{entryId}", h.Journal.Delete)
					r.Post("/{entryId}/pin", h.Journal.TogglePin)
				})

				r.Get("/community/saved", h.Community.ListSaved)

				r.Route("/therapist", func(r chi.Router) {
					if rt.chatLimiter != nil {
						r.Use(rt.chatLimiter.Middleware)
					}
					r.Post("/chat", h.Therapist.Chat)
					r.Post("/feedback", h.Therapist.Feedback)
				})

				r.Get("/wellbeing/narrative", h.Narrative.Get)
				r.Post("/wellbeing/narrative/feedback", h.Narrative.Feedback)
			})
		})

		r.Route("/community/posts", func(r chi.Router) {
			r.Post("/", h.Community.CreatePost)
			r.Get("/", h.Community.ListPosts)
			r.Route("/{postId}", func(r chi.Router) {
				r.Get("/", h.Community.GetPost)
				r.Delete("/", h.Community.DeletePost)
				r.Post("/like", h.Community.Like)
				r.Post("/save", h.Community.Save)
				r.Post("/comments", h.Community.AddComment)
				r.Get("/comments", h.Community.ListComments)
			})
		})

		r.Get("/memes/random", h.Meme.Random)

		r.Route("/breathing", func(r chi.Router) {
			r.Get("/techniques", h.Breathing.ListTechniques)
			r.Get("/techniques/{techniqueId}", h.Breathing.GetTechnique)
			r.Get("/music", h.Breathing.ListMusic)
		})

		r.Route("/focus", func(r chi.Router) {
			r.Get("/activities", h.Focus.ListActivities)
			r.Get("/playlists", h.Focus.ListPlaylists)
		})
	})

	return r
}
