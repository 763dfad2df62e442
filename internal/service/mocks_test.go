package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
)

// MockStageIntervalRepository is a mock implementation of StageIntervalRepository
type MockStageIntervalRepository struct {
	intervals  []domain.StageInterval
	listResult []domain.StageInterval
	err        error
}

func NewMockStageIntervalRepository() *MockStageIntervalRepository {
	return &MockStageIntervalRepository{}
}

func (m *MockStageIntervalRepository) CreateBatch(ctx context.Context, intervals []domain.StageInterval) error {
	if m.err != nil {
		return m.err
	}
	for i := range intervals {
		if intervals[i].ID == uuid.Nil {
			intervals[i].ID = uuid.New()
		}
		intervals[i].CreatedAt = time.Now()
	}
	m.intervals = append(m.intervals, intervals...)
	return nil
}

func (m *MockStageIntervalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.StageInterval, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.StageInterval
	for _, iv := range m.intervals {
		if iv.UserID == userID {
			result = append(result, iv)
		}
	}
	return result, nil
}

func (m *MockStageIntervalRepository) ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.StageInterval
	for _, iv := range m.intervals {
		if iv.UserID == userID && !iv.StartAt.Before(from) && iv.StartAt.Before(to) {
			result = append(result, iv)
		}
	}
	domain.SortIntervals(result)
	return result, nil
}

// MockSleepScoreRepository is a mock implementation of SleepScoreRepository
type MockSleepScoreRepository struct {
	scores map[string]*domain.SleepScore
	err    error
}

func NewMockSleepScoreRepository() *MockSleepScoreRepository {
	return &MockSleepScoreRepository{
		scores: make(map[string]*domain.SleepScore),
	}
}

func scoreKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.Format("2006-01-02")
}

func (m *MockSleepScoreRepository) Upsert(ctx context.Context, score *domain.SleepScore) error {
	if m.err != nil {
		return m.err
	}
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	m.scores[scoreKey(score.UserID, score.Date)] = score
	return nil
}

func (m *MockSleepScoreRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.SleepScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	score, ok := m.scores[scoreKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return score, nil
}

func (m *MockSleepScoreRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepScore
	for _, score := range m.scores {
		if score.UserID == userID && !score.Date.Before(from) && score.Date.Before(to) {
			result = append(result, *score)
		}
	}
	// Oldest first, matching the real repository's ordering
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Date.Before(result[i].Date) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockSummaryLLM is a mock implementation of llm.SummaryLLM
type MockSummaryLLM struct {
	output  *domain.WeeklySummary
	err     error
	lastCtx *domain.SummaryContext
}

func (m *MockSummaryLLM) GenerateSummary(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.WeeklySummary, error) {
	m.lastCtx = summaryCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func timePtr(t time.Time) *time.Time {
	return &t
}
