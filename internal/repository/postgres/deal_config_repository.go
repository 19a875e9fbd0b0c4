package postgres

import (
	"context"
	"encoding/json"

	"agentMarket/business/deals"
	"agentMarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DealConfigRepository struct {
	DB *gorm.DB
}

var _ deals.ConfigRepository = (*DealConfigRepository)(nil)

func NewDealConfigRepository(db *gorm.DB) *DealConfigRepository {
	return &DealConfigRepository{DB: db}
}

func (r *DealConfigRepository) GetConfig(ctx context.Context, placement string) (domain.DealRankConfig, bool, error) {
	var cfg domain.DealRankConfig

	err := r.DB.WithContext(ctx).
		Where("placement = ?", placement).
		First(&cfg).Error
	if err == gorm.ErrRecordNotFound {
		return domain.DealRankConfig{}, false, nil
	}
	if err != nil {
		return domain.DealRankConfig{}, false, err
	}

	if len(cfg.BrandNamesRaw) > 0 {
		_ = json.Unmarshal(cfg.BrandNamesRaw, &cfg.BrandNames)
	}
	return cfg, true, nil
}

func (r *DealConfigRepository) UpsertConfig(ctx context.Context, cfg domain.DealRankConfig) error {
	// if BrandNames is set but BrandNamesRaw is empty, serialize it
	if len(cfg.BrandNamesRaw) == 0 && len(cfg.BrandNames) > 0 {
		raw, _ := json.Marshal(cfg.BrandNames)
		cfg.BrandNamesRaw = raw
	}
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "placement"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"discount_weight",
				"rating_weight",
				"featured_bonus",
				"copay_bonus",
				"brand_bonus",
				"sponsored_bonus",
				"max_deals",
				"brand_names",
			}),
		}).
		Create(&cfg).Error
}
