package postgres

import (
	"context"
	"fmt"

	"agentMarket/business/deals"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type DealEventRepository struct {
	DB *gorm.DB
}

var _ deals.EventRepository = (*DealEventRepository)(nil)

func NewDealEventRepository(db *gorm.DB) *DealEventRepository {
	return &DealEventRepository{DB: db}
}

// SaveEvent appends one impression or click to the tracking log. The log is
// insert-only; rows are never updated.
func (r *DealEventRepository) SaveEvent(ctx context.Context, event domain.DealEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save deal event: %w", err)
	}

	return nil
}

// CountByServiceID reports impression and click totals per service, for the
// admin reporting endpoint.
func (r *DealEventRepository) CountByServiceID(ctx context.Context, serviceID uint64) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	type row struct {
		EventType string
		Total     int64
	}

	var rows []row
	err := r.DB.WithContext(ctx).
		Model(&domain.DealEvent{}).
		Select("event_type, COUNT(*) AS total").
		Where("service_id = ?", serviceID).
		Group("event_type").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count deal events: %w", err)
	}

	counts := map[string]int64{
		domain.EventImpression: 0,
		domain.EventClick:      0,
	}
	for _, r := range rows {
		counts[r.EventType] = r.Total
	}

	return counts, nil
}
