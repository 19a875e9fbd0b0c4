package postgres

import (
	"context"
	"errors"
	"fmt"

	"agentMarket/business/catalog"
	"agentMarket/business/deals"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

var _ catalog.ReviewRepository = (*ReviewRepository)(nil)
var _ deals.RatingRepository = (*ReviewRepository)(nil)

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.ServiceReview) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if review.Rating < 1 || review.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	if err := r.DB.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (r *ReviewRepository) FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.ServiceReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.ServiceReview
	err := r.DB.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

// GetStatsByServiceIDs aggregates the review table into per-service rating
// stats in one query. Services without reviews are absent from the map.
func (r *ReviewRepository) GetStatsByServiceIDs(ctx context.Context, ids []uint64) (map[uint64]domain.ServiceRatingStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	stats := make(map[uint64]domain.ServiceRatingStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	var rows []domain.ServiceRatingStats
	err := r.DB.WithContext(ctx).
		Model(&domain.ServiceReview{}).
		Select("service_id, AVG(rating) AS average_rating, COUNT(*) AS total_reviews").
		Where("service_id IN ?", ids).
		Group("service_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating stats: %w", err)
	}

	for _, row := range rows {
		stats[row.ServiceID] = row
	}

	return stats, nil
}
