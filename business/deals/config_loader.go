package deals

import (
	"context"
	"strings"

	"agentMarket/pkg/logger"
)

// loadConfig reads the ranking weights for a placement from the repo, falling
// back to the default config when the row is missing or the read fails. Reads
// happen per request, so weight changes apply without a restart.
func (s *DealsService) loadConfig(ctx context.Context, placement string) Config {
	if s.cfgRepo == nil {
		return s.defaultCfg
	}

	dbCfg, ok, err := s.cfgRepo.GetConfig(ctx, placement)
	if err != nil {
		logger.Warn("deal rank config lookup failed, using defaults",
			"placement", placement,
			"error", err.Error(),
		)
		return s.defaultCfg
	}
	if !ok {
		return s.defaultCfg
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := s.defaultCfg

	cfg.DiscountWeight = dbCfg.DiscountWeight
	cfg.RatingWeight = dbCfg.RatingWeight
	cfg.FeaturedBonus = dbCfg.FeaturedBonus
	cfg.CopayBonus = dbCfg.CopayBonus
	cfg.BrandBonus = dbCfg.BrandBonus
	cfg.SponsoredBonus = dbCfg.SponsoredBonus

	if dbCfg.MaxDeals > 0 {
		cfg.MaxDeals = dbCfg.MaxDeals
	}

	if len(dbCfg.BrandNames) > 0 {
		brands := make([]string, 0, len(dbCfg.BrandNames))
		for _, b := range dbCfg.BrandNames {
			if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
				brands = append(brands, b)
			}
		}
		if len(brands) > 0 {
			cfg.BrandNames = brands
		}
	}

	return cfg
}
