package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/langfuse"
)

// MockIntervalService is a mock implementation of IntervalService
type MockIntervalService struct {
	createBatchFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateIntervalsRequest) ([]domain.StageInterval, error)
	listFunc        func(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.IntervalListResponse, error)
}

func (m *MockIntervalService) CreateBatch(ctx context.Context, userID uuid.UUID, req *domain.CreateIntervalsRequest) ([]domain.StageInterval, error) {
	if m.createBatchFunc != nil {
		return m.createBatchFunc(ctx, userID, req)
	}
	intervals := make([]domain.StageInterval, len(req.Intervals))
	for i, in := range req.Intervals {
		intervals[i] = domain.StageInterval{
			ID:        uuid.New(),
			UserID:    userID,
			StartAt:   in.StartAt,
			EndAt:     in.EndAt,
			Stage:     in.Stage,
			CreatedAt: time.Now(),
		}
	}
	return intervals, nil
}

func (m *MockIntervalService) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.IntervalListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.IntervalListResponse{
		Data:       []domain.StageIntervalResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.AnalysisResponse, error)
	historyFunc func(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.AnalysisResponse, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID, date)
	}
	return &domain.AnalysisResponse{
		Date:     date.Format("2006-01-02"),
		Insights: []domain.InsightItem{},
	}, nil
}

func (m *MockAnalysisService) History(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, days)
	}
	return &domain.ScoreHistoryResponse{Data: []domain.SleepScoreResponse{}}, nil
}

// MockSummaryService is a mock implementation of SummaryService
type MockSummaryService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error)
}

func (m *MockSummaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.SummaryResponse{
		NightsUsed: 7,
		Summary:    domain.WeeklySummary{Summary: "A steady week."},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	scores []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool {
	return true
}

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return uuid.New().String(), nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}
