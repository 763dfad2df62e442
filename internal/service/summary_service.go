package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/insight"
	"github.com/tjtech/sleepinsight-api/internal/llm"
	"github.com/tjtech/sleepinsight-api/internal/repository"
)

// SummaryWindowDays is how many trailing scored days feed the weekly summary.
const SummaryWindowDays = 7

// SummaryService narrates the trailing week of scored nights via an LLM.
type SummaryService interface {
	// Generate builds the weekly narrative summary for a user.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error)
}

type summaryService struct {
	scoreRepo repository.SleepScoreRepository
	userRepo  repository.UserRepository
	llmClient llm.SummaryLLM
	now       func() time.Time
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	scoreRepo repository.SleepScoreRepository,
	userRepo repository.UserRepository,
	llmClient llm.SummaryLLM,
) SummaryService {
	return &summaryService{
		scoreRepo: scoreRepo,
		userRepo:  userRepo,
		llmClient: llmClient,
		now:       time.Now,
	}
}

func (s *summaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.SummaryResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	to := midnightUTC(s.now().UTC()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -SummaryWindowDays)

	scores, err := s.scoreRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, domain.ErrNoSleepData
	}

	baseline := insight.ComputeBaseline(scores)

	summaryCtx := &domain.SummaryContext{
		Nights: make([]domain.SleepScoreResponse, len(scores)),
	}
	summaryCtx.Baseline.AvgDurationHours = baseline.AvgDurationHours
	summaryCtx.Baseline.MedianBedtimeHours = baseline.MedianBedtimeHours
	summaryCtx.Baseline.AvgInterruptions = baseline.AvgInterruptions
	for i, score := range scores {
		summaryCtx.Nights[i] = score.ToResponse()
	}

	summary, err := s.llmClient.GenerateSummary(ctx, summaryCtx)
	if err != nil {
		return nil, err
	}

	return &domain.SummaryResponse{
		NightsUsed: len(scores),
		Summary:    *summary,
	}, nil
}
