package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/insight"
	"github.com/tjtech/sleepinsight-api/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// BaselineWindowDays is how many prior scored days feed the baseline.
	BaselineWindowDays = 7

	// DefaultHistoryDays is the default window for the score history endpoint.
	DefaultHistoryDays = 30

	// MaxHistoryDays caps the score history window.
	MaxHistoryDays = 90
)

// AnalysisService scores sleep days and generates insights from stored
// stage intervals.
type AnalysisService interface {
	// Analyze scores the given sleep day and composes its insights.
	Analyze(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.AnalysisResponse, error)
	// History returns stored scores for the trailing window, oldest first.
	History(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error)
}

type analysisService struct {
	intervalRepo    repository.StageIntervalRepository
	scoreRepo       repository.SleepScoreRepository
	userRepo        repository.UserRepository
	composer        *insight.Composer
	dayBoundaryHour int
	now             func() time.Time
}

// NewAnalysisService creates a new AnalysisService. dayBoundaryHour is the
// local hour at which one sleep day ends and the next begins (typically noon,
// so a night spanning midnight stays on one day).
func NewAnalysisService(
	intervalRepo repository.StageIntervalRepository,
	scoreRepo repository.SleepScoreRepository,
	userRepo repository.UserRepository,
	composer *insight.Composer,
	dayBoundaryHour int,
) AnalysisService {
	return &analysisService{
		intervalRepo:    intervalRepo,
		scoreRepo:       scoreRepo,
		userRepo:        userRepo,
		composer:        composer,
		dayBoundaryHour: dayBoundaryHour,
		now:             time.Now,
	}
}

func (s *analysisService) Analyze(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.AnalysisResponse, error) {
	tracer := otel.Tracer("sleepinsight-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("analysis.date", date.Format("2006-01-02")),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := time.UTC
	if user.Timezone != "" {
		if l, err := time.LoadLocation(user.Timezone); err == nil {
			loc = l
		}
	}

	// The sleep day runs boundary-to-boundary in the user's timezone, so a
	// night spanning midnight belongs to the morning's date.
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), s.dayBoundaryHour, 0, 0, 0, loc)
	dayStart := dayEnd.AddDate(0, 0, -1)

	intervals, err := s.intervalRepo.ListByStartRange(ctx, userID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	history, err := s.priorScores(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	baseline := insight.ComputeBaseline(history)

	span.SetAttributes(
		attribute.Int("analysis.interval_count", len(intervals)),
		attribute.Int("analysis.baseline_days", baseline.SampleDays),
	)

	score, err := insight.AnalyzeNight(intervals, date, loc, baseline, s.now().UTC())
	if errors.Is(err, domain.ErrNoSleepData) {
		return &domain.AnalysisResponse{
			Date:     date.Format("2006-01-02"),
			Insights: []domain.InsightItem{insight.NoDataInsight()},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	score.UserID = userID

	if err := s.scoreRepo.Upsert(ctx, score); err != nil {
		return nil, err
	}

	matches := insight.DetectPatterns(score, history, baseline)
	insights := s.composer.Compose(score, history, baseline, matches)
	readiness := insight.ReadinessFor(score)
	tip := insight.DailyTipFor(score)

	scoreResp := score.ToResponse()
	response := &domain.AnalysisResponse{
		Date:      date.Format("2006-01-02"),
		Score:     &scoreResp,
		Insights:  insights,
		Readiness: &readiness,
		DailyTip:  &tip,
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *analysisService) History(ctx context.Context, userID uuid.UUID, days int) (*domain.ScoreHistoryResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if days <= 0 {
		days = DefaultHistoryDays
	}
	if days > MaxHistoryDays {
		days = MaxHistoryDays
	}

	to := midnightUTC(s.now().UTC()).AddDate(0, 0, 1)
	from := to.AddDate(0, 0, -days)

	scores, err := s.scoreRepo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	response := &domain.ScoreHistoryResponse{
		Data: make([]domain.SleepScoreResponse, len(scores)),
	}
	for i, score := range scores {
		response.Data[i] = score.ToResponse()
	}
	return response, nil
}

// priorScores loads the baseline window: stored scores for the 7 days before
// the analyzed date, oldest first, never including the analyzed day itself.
func (s *analysisService) priorScores(ctx context.Context, userID uuid.UUID, date time.Time) ([]domain.SleepScore, error) {
	to := midnightUTC(date)
	from := to.AddDate(0, 0, -BaselineWindowDays)
	return s.scoreRepo.ListByDateRange(ctx, userID, from, to)
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
