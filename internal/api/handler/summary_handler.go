package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/langfuse"
	"github.com/tjtech/sleepinsight-api/internal/llm"
	"github.com/tjtech/sleepinsight-api/internal/service"
	"github.com/tjtech/sleepinsight-api/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// SummaryHandler handles the LLM-backed weekly summary endpoints.
type SummaryHandler struct {
	service        service.SummaryService
	langfuseClient langfuse.Client
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(service service.SummaryService, langfuseClient langfuse.Client) *SummaryHandler {
	return &SummaryHandler{
		service:        service,
		langfuseClient: langfuseClient,
	}
}

// GetSummary handles GET /v1/users/{userId}/sleep/summary
// @Summary Get LLM weekly summary
// @Description Generate a narrative summary of the trailing week of scored nights using an LLM.
// @Tags sleep-summary
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.SummaryResponse "Weekly narrative summary"
// @Failure 404 {object} problem.Problem "User not found or no scored nights"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/sleep/summary [get]
func (h *SummaryHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrNoSleepData) {
			problem.NotFound("No scored nights in the summary window").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.New(http.StatusServiceUnavailable, "service-unavailable", "Service Unavailable", "OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate summary from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate summary").Write(w)
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// FeedbackRequest is the request body for summary feedback.
// @Description Request body for submitting feedback on a weekly summary.
type FeedbackRequest struct {
	// Trace ID from the summary response
	TraceID string `json:"trace_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The summary matched my week."`
}

// PostFeedback handles POST /v1/users/{userId}/sleep/summary/feedback
// @Summary Submit feedback on a weekly summary
// @Description Submit a user rating and optional comment for a previous summary response.
// @Tags sleep-summary
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/summary/feedback [post]
func (h *SummaryHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	if _, err := uuid.Parse(chi.URLParam(r, "userId")); err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	// Validate required fields
	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Create score in Langfuse (errors are logged but don't fail the request)
	_ = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    "user_rating",
		Value:   float64(req.Score),
		Comment: req.Comment,
	})

	w.WriteHeader(http.StatusNoContent)
}
