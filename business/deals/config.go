package deals

import (
	"context"

	"agentMarket/domain"
)

// Config carries the ranking weights for one placement. It is always passed
// into the scoring functions explicitly so they stay pure and testable.
type Config struct {
	DiscountWeight float64
	RatingWeight   float64
	FeaturedBonus  float64
	CopayBonus     float64
	BrandBonus     float64
	SponsoredBonus float64

	// vendor-name substrings that earn the brand bonus, lower-cased
	BrandNames []string

	// hard cap on the ranked list length
	MaxDeals int
}

const (
	defaultDiscountWeight = 0.3
	defaultRatingWeight   = 10.0
	defaultFeaturedBonus  = 20.0
	defaultCopayBonus     = 15.0
	defaultBrandBonus     = 0.1
	defaultSponsoredBonus = 5.0
	defaultMaxDeals       = 12
)

func defaultBrandNames() []string {
	return []string{"keller williams", "re/max", "coldwell banker", "century 21"}
}

func DefaultConfig() Config {
	return Config{
		DiscountWeight: defaultDiscountWeight,
		RatingWeight:   defaultRatingWeight,
		FeaturedBonus:  defaultFeaturedBonus,
		CopayBonus:     defaultCopayBonus,
		BrandBonus:     defaultBrandBonus,
		SponsoredBonus: defaultSponsoredBonus,
		BrandNames:     defaultBrandNames(),
		MaxDeals:       defaultMaxDeals,
	}
}

// read per-placement ranking weights from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context, placement string) (domain.DealRankConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.DealRankConfig) error
}

// kill switch per merchandising surface.
type FlagRepository interface {
	IsEnabled(ctx context.Context, surface string) (bool, error)
	SetEnabled(ctx context.Context, surface string, enabled bool) error
}
