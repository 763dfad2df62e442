package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tjtech/sleepinsight-api/internal/domain"
	"github.com/tjtech/sleepinsight-api/internal/repository"
	"github.com/tjtech/sleepinsight-api/pkg/pagination"
)

type IntervalService interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, req *domain.CreateIntervalsRequest) ([]domain.StageInterval, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.IntervalListResponse, error)
}

type intervalService struct {
	repo     repository.StageIntervalRepository
	userRepo repository.UserRepository
}

func NewIntervalService(repo repository.StageIntervalRepository, userRepo repository.UserRepository) IntervalService {
	return &intervalService{
		repo:     repo,
		userRepo: userRepo,
	}
}

// CreateBatch stores a batch of stage intervals for the user. Timestamps are
// normalized to UTC; interval validity (end after start, known stage) is
// enforced at the request-validation layer.
func (s *intervalService) CreateBatch(ctx context.Context, userID uuid.UUID, req *domain.CreateIntervalsRequest) ([]domain.StageInterval, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	intervals := make([]domain.StageInterval, len(req.Intervals))
	for i, in := range req.Intervals {
		intervals[i] = domain.StageInterval{
			UserID:  userID,
			StartAt: in.StartAt.UTC(),
			EndAt:   in.EndAt.UTC(),
			Stage:   in.Stage,
		}
	}

	if err := s.repo.CreateBatch(ctx, intervals); err != nil {
		return nil, err
	}

	return intervals, nil
}

func (s *intervalService) List(ctx context.Context, userID uuid.UUID, filter domain.IntervalFilter) (*domain.IntervalListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	intervals, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(intervals) > limit

	// Trim to actual limit
	if hasMore {
		intervals = intervals[:limit]
	}

	// Build response
	response := &domain.IntervalListResponse{
		Data: make([]domain.StageIntervalResponse, len(intervals)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, iv := range intervals {
		response.Data[i] = iv.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(intervals) > 0 {
		last := intervals[len(intervals)-1]
		cursor := &pagination.Cursor{
			ID:      last.ID,
			StartAt: last.StartAt,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}
