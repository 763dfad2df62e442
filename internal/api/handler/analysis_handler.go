package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/service"
	"github.com/tjtech/sleepinsight-api/pkg/problem"
)

// AnalysisHandler handles sleep analysis and score history endpoints.
type AnalysisHandler struct {
	service service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// GetAnalysis handles GET /v1/users/{userId}/sleep/analysis
// @Summary Analyze a sleep day
// @Description Score the sleep day's stage intervals and compose ranked insights, readiness, and a daily tip. Days without qualifying sleep data return a null score with a single "Not Enough Data" insight.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date query string false "Sleep day to analyze (YYYY-MM-DD, defaults to today)" format(date) example(2024-01-16)
// @Success 200 {object} domain.AnalysisResponse "Analysis result"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/analysis [get]
func (h *AnalysisHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date := time.Now().UTC()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
			return
		}
	}

	result, err := h.service.Analyze(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to analyze sleep day").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetScores handles GET /v1/users/{userId}/sleep/scores
// @Summary Get score history
// @Description Fetch stored sleep scores for the trailing window, oldest first.
// @Tags sleep-analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param days query integer false "Window size in days" default(30) minimum(1) maximum(90)
// @Success 200 {object} domain.ScoreHistoryResponse "Score history"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep/scores [get]
func (h *AnalysisHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	days := service.DefaultHistoryDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil || days < 1 || days > service.MaxHistoryDays {
			problem.BadRequest("days must be between 1 and 90").Write(w)
			return
		}
	}

	result, err := h.service.History(r.Context(), userID, days)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to load score history").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
