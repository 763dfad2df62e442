// Sleep Insight API
//
// REST API for sleep scoring, pattern insights, and weekly summaries.
//
//	@title			Sleep Insight API
//	@version		1.0
//	@description	Ingest sleep-stage intervals, score sleep days, and generate pattern-based insights with daily readiness and tips.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-intervals
//	@tag.description	Sleep-stage interval ingestion endpoints
//
//	@tag.name			sleep-analysis
//	@tag.description	Sleep day scoring and insight endpoints
//
//	@tag.name			sleep-summary
//	@tag.description	LLM-backed weekly summary endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/tjtech/sleepinsight-api/internal/api"
	"github.com/tjtech/sleepinsight-api/internal/api/handler"
	"github.com/tjtech/sleepinsight-api/internal/config"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/insight"
	"github.com/tjtech/sleepinsight-api/internal/langfuse"
	"github.com/tjtech/sleepinsight-api/internal/llm"
	"github.com/tjtech/sleepinsight-api/internal/repository"
	"github.com/tjtech/sleepinsight-api/internal/seed"
	"github.com/tjtech/sleepinsight-api/internal/service"
	"github.com/tjtech/sleepinsight-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.StageInterval{}, &domain.SleepScore{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize tracing (no-op when Langfuse is not configured)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "sleepinsight-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(ctx); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Initialize Langfuse client for feedback scores
	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	intervalRepo := repository.NewStageIntervalRepository(db)
	scoreRepo := repository.NewSleepScoreRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	intervalService := service.NewIntervalService(intervalRepo, userRepo)
	composer := insight.NewComposer(nil)
	analysisService := service.NewAnalysisService(intervalRepo, scoreRepo, userRepo, composer, cfg.DayBoundaryHour)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAISummaryModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, summary endpoint will be unavailable")
	}

	// Optionally pull the summary system prompt from Langfuse
	if cfg.LangfusePromptName != "" {
		prompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
			BaseURL:     cfg.LangfuseBaseURL,
			PublicKey:   cfg.LangfusePublicKey,
			SecretKey:   cfg.LangfuseSecretKey,
			PromptName:  cfg.LangfusePromptName,
			PromptLabel: cfg.LangfusePromptLabel,
			SavePath:    "prompts/summary-system.txt",
		})
		if err != nil {
			log.Printf("Warning: could not load prompt %q from Langfuse, using built-in: %v", cfg.LangfusePromptName, err)
		} else {
			openaiClient = openaiClient.WithSystemPrompt(prompt)
		}
	}

	summaryService := service.NewSummaryService(scoreRepo, userRepo, openaiClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	intervalHandler := handler.NewIntervalHandler(intervalService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	summaryHandler := handler.NewSummaryHandler(summaryService, langfuseClient)

	// Setup router
	router := api.NewRouter(userHandler, intervalHandler, analysisHandler, summaryHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
