package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/pkg/pagination"
	"gorm.io/gorm"
)

type StageIntervalRepository interface {
	CreateBatch(ctx context.Context, intervals []domain.StageInterval) error
	List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error)
	ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error)
}

type stageIntervalRepository struct {
	db *gorm.DB
}

func NewStageIntervalRepository(db *gorm.DB) StageIntervalRepository {
	return &stageIntervalRepository{db: db}
}

func (r *stageIntervalRepository) CreateBatch(ctx context.Context, intervals []domain.StageInterval) error {
	return r.db.WithContext(ctx).Create(&intervals).Error
}

func (r *stageIntervalRepository) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) ([]domain.StageInterval, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC")

	// Apply time filters
	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with start_at < cursor.StartAt
			// or same start_at but id < cursor.ID
			query = query.Where(
				"(start_at < ?) OR (start_at = ? AND id < ?)",
				cursor.StartAt, cursor.StartAt, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var intervals []domain.StageInterval
	if err := query.Find(&intervals).Error; err != nil {
		return nil, err
	}

	return intervals, nil
}

// ListByStartRange returns every interval whose start falls inside [from, to),
// ordered ascending so the analyzer can walk the night chronologically.
func (r *stageIntervalRepository) ListByStartRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.StageInterval, error) {
	var intervals []domain.StageInterval
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("start_at >= ?", from).
		Where("start_at < ?", to).
		Order("start_at ASC").
		Find(&intervals).Error
	if err != nil {
		return nil, err
	}
	return intervals, nil
}
