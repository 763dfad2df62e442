package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/tjtech/sleepinsight-api/docs"
	"github.com/tjtech/sleepinsight-api/internal/api/handler"
	"github.com/tjtech/sleepinsight-api/internal/api/middleware"
)

type Router struct {
	userHandler     *handler.UserHandler
	intervalHandler *handler.IntervalHandler
	analysisHandler *handler.AnalysisHandler
	summaryHandler  *handler.SummaryHandler
}

func NewRouter(
	userHandler *handler.UserHandler,
	intervalHandler *handler.IntervalHandler,
	analysisHandler *handler.AnalysisHandler,
	summaryHandler *handler.SummaryHandler,
) *Router {
	return &Router{
		userHandler:     userHandler,
		intervalHandler: intervalHandler,
		analysisHandler: analysisHandler,
		summaryHandler:  summaryHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Users
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			// Sleep data and analysis (nested under users)
			r.Route("/{userId}/sleep", func(r chi.Router) {
				r.Post("/intervals", rt.intervalHandler.Create)
				r.Get("/intervals", rt.intervalHandler.List)
				r.Get("/analysis", rt.analysisHandler.GetAnalysis)
				r.Get("/scores", rt.analysisHandler.GetScores)
				r.Get("/summary", rt.summaryHandler.GetSummary)
				r.Post("/summary/feedback", rt.summaryHandler.PostFeedback)
			})
		})
	})

	return r
}
