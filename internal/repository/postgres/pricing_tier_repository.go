package postgres

import (
	"context"
	"fmt"

	"agentMarket/business/catalog"
	"agentMarket/domain"

	"gorm.io/gorm"
)

type PricingTierRepository struct {
	DB *gorm.DB
}

var _ catalog.TierRepository = (*PricingTierRepository)(nil)

func NewPricingTierRepository(db *gorm.DB) *PricingTierRepository {
	return &PricingTierRepository{DB: db}
}

func (r *PricingTierRepository) FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.PricingTier, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var tiers []domain.PricingTier
	err := r.DB.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("position ASC").
		Find(&tiers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing tiers: %w", err)
	}

	return tiers, nil
}

// ReplaceForService swaps a service's full tier list in one transaction.
func (r *PricingTierRepository) ReplaceForService(ctx context.Context, serviceID uint64, tiers []domain.PricingTier) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", serviceID).Delete(&domain.PricingTier{}).Error; err != nil {
			return fmt.Errorf("failed to clear pricing tiers: %w", err)
		}

		for i := range tiers {
			tiers[i].ID = 0
			tiers[i].ServiceID = serviceID
		}

		if len(tiers) == 0 {
			return nil
		}

		if err := tx.Create(&tiers).Error; err != nil {
			return fmt.Errorf("failed to create pricing tiers: %w", err)
		}

		return nil
	})
}
