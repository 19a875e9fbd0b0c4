package postgres

import (
	"context"
	"fmt"

	"agentMarket/business/deals"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type CuratedRepository struct {
	DB *gorm.DB
}

var _ deals.CuratedRepository = (*CuratedRepository)(nil)

func NewCuratedRepository(db *gorm.DB) *CuratedRepository {
	return &CuratedRepository{DB: db}
}

func (r *CuratedRepository) GetByPlacement(ctx context.Context, placement string) ([]domain.CuratedPlacement, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var pins []domain.CuratedPlacement
	err := r.DB.WithContext(ctx).
		Where("placement = ?", placement).
		Order("position ASC").
		Find(&pins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find curated placements: %w", err)
	}

	return pins, nil
}

// ReplaceForPlacement swaps the full pin list of a placement in one
// transaction so readers never see a half-applied list.
func (r *CuratedRepository) ReplaceForPlacement(ctx context.Context, placement string, pins []domain.CuratedPlacement) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("placement = ?", placement).Delete(&domain.CuratedPlacement{}).Error; err != nil {
			return fmt.Errorf("failed to clear curated placements: %w", err)
		}

		for i := range pins {
			pins[i].ID = 0
			pins[i].Placement = placement
		}

		if len(pins) == 0 {
			return nil
		}

		if err := tx.Create(&pins).Error; err != nil {
			return fmt.Errorf("failed to create curated placements: %w", err)
		}

		return nil
	})
}
