package domain

// DealRankConfig holds the ranking weights for one merchandising placement.
// Rows are read per request so weight changes take effect without a restart.
type DealRankConfig struct {
	Placement string `json:"placement" gorm:"column:placement;primaryKey"`

	DiscountWeight float64 `json:"discount_weight" gorm:"column:discount_weight"`
	RatingWeight   float64 `json:"rating_weight" gorm:"column:rating_weight"`
	FeaturedBonus  float64 `json:"featured_bonus" gorm:"column:featured_bonus"`
	CopayBonus     float64 `json:"copay_bonus" gorm:"column:copay_bonus"`
	BrandBonus     float64 `json:"brand_bonus" gorm:"column:brand_bonus"`
	SponsoredBonus float64 `json:"sponsored_bonus" gorm:"column:sponsored_bonus"`

	MaxDeals int `json:"max_deals" gorm:"column:max_deals"`

	BrandNamesRaw []byte   `json:"-" gorm:"column:brand_names"`
	BrandNames    []string `json:"brand_names" gorm:"-"`
}

func (DealRankConfig) TableName() string {
	return "deal_rank_configs"
}
