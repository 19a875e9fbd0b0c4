package deals

import (
	"strings"

	"agentMarket/domain"
)

// Score combines discount, rating and promotional flags into a single ranking
// number under the supplied weights. Deterministic: identical inputs always
// produce the identical score. No normalization across contributions; weights
// are tuned empirically.
func Score(svc domain.Service, stats *domain.ServiceRatingStats, discount int, cfg Config) float64 {
	score := float64(discount) * cfg.DiscountWeight

	if stats != nil {
		score += stats.AverageRating * cfg.RatingWeight
	}

	if svc.IsFeatured {
		score += cfg.FeaturedBonus
	}

	if svc.CopayAllowed {
		score += cfg.CopayBonus
	}

	if svc.Vendor != nil && matchesBrand(svc.Vendor.Name, cfg.BrandNames) {
		score += cfg.BrandBonus * 10
	}

	if svc.IsSponsored {
		score += cfg.SponsoredBonus
	}

	return score
}

func matchesBrand(vendorName string, brands []string) bool {
	name := strings.ToLower(vendorName)
	for _, brand := range brands {
		if brand != "" && strings.Contains(name, brand) {
			return true
		}
	}
	return false
}
