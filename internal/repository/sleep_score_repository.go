package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SleepScoreRepository interface {
	Upsert(ctx context.Context, score *domain.SleepScore) error
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.SleepScore, error)
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepScore, error)
}

type sleepScoreRepository struct {
	db *gorm.DB
}

func NewSleepScoreRepository(db *gorm.DB) SleepScoreRepository {
	return &sleepScoreRepository{db: db}
}

// Upsert stores the score, replacing any prior analysis of the same user+date.
func (r *sleepScoreRepository) Upsert(ctx context.Context, score *domain.SleepScore) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"duration_score", "bedtime_score", "interruptions_score",
			"total_score", "weighted_score", "total_sleep_hours",
			"bedtime_hour", "bedtime_minute", "interruption_count",
		}),
	}).Create(score).Error
}

func (r *sleepScoreRepository) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.SleepScore, error) {
	var score domain.SleepScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&score).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}

// ListByDateRange returns stored scores with date in [from, to), oldest first.
func (r *sleepScoreRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepScore, error) {
	var scores []domain.SleepScore
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ?", from).
		Where("date < ?", to).
		Order("date ASC").
		Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}
