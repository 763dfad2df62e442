package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/insight"
)

func newAnalysisFixture(t *testing.T) (*MockStageIntervalRepository, *MockSleepScoreRepository, *MockUserRepository, AnalysisService, *domain.User) {
	t.Helper()
	intervalRepo := NewMockStageIntervalRepository()
	scoreRepo := NewMockSleepScoreRepository()
	userRepo := NewMockUserRepository()
	composer := insight.NewComposer(rand.New(rand.NewSource(1)))
	svc := NewAnalysisService(intervalRepo, scoreRepo, userRepo, composer, 12)
	user := newTestUser(t, userRepo, "UTC")
	return intervalRepo, scoreRepo, userRepo, svc, user
}

func seedNight(t *testing.T, repo *MockStageIntervalRepository, userID uuid.UUID, intervals []domain.StageInterval) {
	t.Helper()
	for i := range intervals {
		intervals[i].UserID = userID
	}
	if err := repo.CreateBatch(context.Background(), intervals); err != nil {
		t.Fatalf("failed to seed intervals: %v", err)
	}
}

func TestAnalysisService_Analyze(t *testing.T) {
	intervalRepo, scoreRepo, _, svc, user := newAnalysisFixture(t)

	// Night of Jan 15-16: asleep 23:00-03:00, brief wake, asleep 03:15-07:00
	bed := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	seedNight(t, intervalRepo, user.ID, []domain.StageInterval{
		{StartAt: bed, EndAt: bed.Add(4 * time.Hour), Stage: domain.StageAsleep},
		{StartAt: bed.Add(4 * time.Hour), EndAt: bed.Add(4*time.Hour + 15*time.Minute), Stage: domain.StageAwake},
		{StartAt: bed.Add(4*time.Hour + 15*time.Minute), EndAt: bed.Add(8 * time.Hour), Stage: domain.StageAsleep},
	})

	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Analyze(context.Background(), user.ID, date)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if resp.Score == nil {
		t.Fatal("Analyze() Score is nil for a night with sleep data")
	}
	if resp.Score.TotalSleepHours != 7.75 {
		t.Errorf("TotalSleepHours = %v, want 7.75", resp.Score.TotalSleepHours)
	}
	if resp.Score.InterruptionCount != 1 {
		t.Errorf("InterruptionCount = %d, want 1", resp.Score.InterruptionCount)
	}
	if resp.Score.Bedtime != "11:00 PM" {
		t.Errorf("Bedtime = %q, want \"11:00 PM\"", resp.Score.Bedtime)
	}
	if len(resp.Insights) == 0 || len(resp.Insights) > insight.MaxSelectedPatterns {
		t.Errorf("len(Insights) = %d, want 1-%d", len(resp.Insights), insight.MaxSelectedPatterns)
	}
	if resp.Readiness == nil || resp.DailyTip == nil {
		t.Error("Analyze() readiness or daily tip missing")
	}

	// The score must be persisted for future baselines
	stored, err := scoreRepo.GetByDate(context.Background(), user.ID, date)
	if err != nil {
		t.Fatalf("score was not persisted: %v", err)
	}
	if stored.TotalScore != resp.Score.TotalScore {
		t.Errorf("stored TotalScore = %d, want %d", stored.TotalScore, resp.Score.TotalScore)
	}
}

func TestAnalysisService_Analyze_NoData(t *testing.T) {
	intervalRepo, scoreRepo, _, svc, user := newAnalysisFixture(t)

	// Only ambiguous in-bed time, no confirmed sleep
	bed := time.Date(2024, 1, 15, 23, 0, 0, 0, time.UTC)
	seedNight(t, intervalRepo, user.ID, []domain.StageInterval{
		{StartAt: bed, EndAt: bed.Add(time.Hour), Stage: domain.StageInBed},
	})

	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	resp, err := svc.Analyze(context.Background(), user.ID, date)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if resp.Score != nil {
		t.Errorf("Score = %+v, want nil", resp.Score)
	}
	if len(resp.Insights) != 1 || resp.Insights[0].Type != domain.InsightNoData {
		t.Errorf("Insights = %+v, want single no_data item", resp.Insights)
	}
	if resp.Readiness != nil || resp.DailyTip != nil {
		t.Error("readiness and daily tip must be omitted without a score")
	}
	if _, err := scoreRepo.GetByDate(context.Background(), user.ID, date); err != domain.ErrNotFound {
		t.Error("no score row should be written for a no-data day")
	}
}

func TestAnalysisService_Analyze_UserNotFound(t *testing.T) {
	_, _, _, svc, _ := newAnalysisFixture(t)

	date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Analyze(context.Background(), uuid.New(), date); err != domain.ErrNotFound {
		t.Errorf("Analyze() error = %v, want ErrNotFound", err)
	}
}

func TestAnalysisService_Analyze_UsesBaseline(t *testing.T) {
	intervalRepo, scoreRepo, _, svc, user := newAnalysisFixture(t)

	// Seven prior nights at 22:00 establish the baseline median
	for i := 1; i <= 7; i++ {
		date := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -i)
		err := scoreRepo.Upsert(context.Background(), &domain.SleepScore{
			UserID: user.ID, Date: date,
			TotalSleepHours: 7.5, BedtimeHour: 22, InterruptionCount: 2,
		})
		if err != nil {
			t.Fatalf("failed to seed score: %v", err)
		}
	}

	// Tonight's bedtime is 00:00, two circular hours off the 22:00 median
	bed := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)
	seedNight(t, intervalRepo, user.ID, []domain.StageInterval{
		{StartAt: bed, EndAt: bed.Add(8 * time.Hour), Stage: domain.StageAsleep},
	})

	resp, err := svc.Analyze(context.Background(), user.ID, bed)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if resp.Score.BedtimeScore != 20 {
		t.Errorf("BedtimeScore = %d, want 20 for a 120 minute deviation", resp.Score.BedtimeScore)
	}
}

func TestAnalysisService_History(t *testing.T) {
	_, scoreRepo, _, svc, user := newAnalysisFixture(t)
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	svc.(*analysisService).now = func() time.Time { return now }

	for i := 0; i < 10; i++ {
		date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -i)
		err := scoreRepo.Upsert(context.Background(), &domain.SleepScore{
			UserID: user.ID, Date: date,
			TotalScore: 80 + i, TotalSleepHours: 7.5,
		})
		if err != nil {
			t.Fatalf("failed to seed score: %v", err)
		}
	}

	resp, err := svc.History(context.Background(), user.ID, 5)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(resp.Data) != 5 {
		t.Fatalf("History() returned %d scores, want 5", len(resp.Data))
	}
	// Oldest first
	for i := 1; i < len(resp.Data); i++ {
		if resp.Data[i-1].Date >= resp.Data[i].Date {
			t.Errorf("History() not ordered oldest first: %s before %s", resp.Data[i-1].Date, resp.Data[i].Date)
		}
	}
}

func TestAnalysisService_History_UserNotFound(t *testing.T) {
	_, _, _, svc, _ := newAnalysisFixture(t)

	if _, err := svc.History(context.Background(), uuid.New(), 7); err != domain.ErrNotFound {
		t.Errorf("History() error = %v, want ErrNotFound", err)
	}
}
