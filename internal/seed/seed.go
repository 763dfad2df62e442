package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users and stage intervals. Safe to call
// multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.StageInterval{}, &domain.SleepScore{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedNightsForUser(db, user, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

// seedNightsForUser writes a realistic night per day: one long asleep block
// broken by a few awake intervals, with occasional in-bed time before sleep.
func seedNightsForUser(db *gorm.DB, user domain.User, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)

		var count int64
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
		err := db.Model(&domain.StageInterval{}).
			Where("user_id = ? AND start_at >= ? AND start_at < ?", user.ID, dayStart.Add(12*time.Hour), dayStart.Add(36*time.Hour)).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing intervals: %w", err)
		}
		if count > 0 {
			continue
		}

		intervals := buildNight(user.ID, date, rng)
		if err := db.Create(&intervals).Error; err != nil {
			return fmt.Errorf("failed to create intervals for %s: %w", user.ID, err)
		}
	}
	return nil
}

func buildNight(userID uuid.UUID, date time.Time, rng *rand.Rand) []domain.StageInterval {
	bedtime := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC).
		Add(-time.Duration(60+rng.Intn(120)) * time.Minute) // 22:00-00:00 the prior evening

	var intervals []domain.StageInterval
	cursor := bedtime

	// Some nights start with restless in-bed time
	if rng.Float32() < 0.3 {
		inBed := time.Duration(5+rng.Intn(20)) * time.Minute
		intervals = append(intervals, interval(userID, cursor, inBed, domain.StageInBed))
		cursor = cursor.Add(inBed)
	}

	wakeEvents := rng.Intn(4)
	totalSleep := time.Duration(6*60+rng.Intn(150)) * time.Minute
	segment := totalSleep / time.Duration(wakeEvents+1)

	for w := 0; w <= wakeEvents; w++ {
		intervals = append(intervals, interval(userID, cursor, segment, domain.StageAsleep))
		cursor = cursor.Add(segment)

		if w < wakeEvents {
			awake := time.Duration(2+rng.Intn(10)) * time.Minute
			intervals = append(intervals, interval(userID, cursor, awake, domain.StageAwake))
			cursor = cursor.Add(awake)
		}
	}

	return intervals
}

func interval(userID uuid.UUID, start time.Time, d time.Duration, stage domain.SleepStage) domain.StageInterval {
	return domain.StageInterval{
		UserID:  userID,
		StartAt: start,
		EndAt:   start.Add(d),
		Stage:   stage,
	}
}
