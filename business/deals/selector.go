package deals

import (
	"fmt"
	"sort"
	"strings"

	"agentMarket/domain"
	"agentMarket/pkg/logger"
)

type enrichFunc func(svc domain.Service) (domain.ScoredDeal, error)

// IsDealCandidate reports whether a service may appear in the deals carousel
// at all: affiliate offerings, co-pay-enabled offerings, or verified
// offerings with a pro price. Everything else is excluded regardless of
// score.
func IsDealCandidate(svc domain.Service) bool {
	if svc.IsAffiliate {
		return true
	}
	if svc.RespaSplitLimit > 0 {
		return true
	}
	return svc.IsVerified && strings.TrimSpace(svc.ProPrice) != ""
}

// SelectDeals runs the full ranking pipeline: filter candidates, enrich each
// with rating stats, discount, score and display price, sort by descending
// score (input order breaks ties), and truncate to limit. A candidate that
// fails enrichment is dropped; the pipeline itself never fails.
func SelectDeals(services []domain.Service, stats map[uint64]domain.ServiceRatingStats, cfg Config, limit int) []domain.ScoredDeal {
	enrich := func(svc domain.Service) (domain.ScoredDeal, error) {
		return enrichDeal(svc, stats, cfg)
	}
	return selectDeals(services, cfg, limit, enrich)
}

func selectDeals(services []domain.Service, cfg Config, limit int, enrich enrichFunc) []domain.ScoredDeal {
	if limit <= 0 || limit > cfg.MaxDeals {
		limit = cfg.MaxDeals
	}
	if limit <= 0 {
		limit = defaultMaxDeals
	}

	deals := make([]domain.ScoredDeal, 0, len(services))
	for _, svc := range services {
		if !IsDealCandidate(svc) {
			continue
		}

		deal, err := safeEnrich(enrich, svc)
		if err != nil {
			logger.Warn("dropping deal candidate",
				"service_id", svc.ID,
				"error", err.Error(),
			)
			continue
		}

		deals = append(deals, deal)
	}

	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].Score > deals[j].Score
	})

	if len(deals) > limit {
		deals = deals[:limit]
	}

	return deals
}

// safeEnrich converts a panic during per-item enrichment into an error so a
// single malformed record cannot take down the whole carousel.
func safeEnrich(enrich enrichFunc, svc domain.Service) (deal domain.ScoredDeal, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enrich candidate %d: %v", svc.ID, r)
		}
	}()
	return enrich(svc)
}

func enrichDeal(svc domain.Service, stats map[uint64]domain.ServiceRatingStats, cfg Config) (domain.ScoredDeal, error) {
	discount, price := Savings(svc)

	// absent stats are a valid "no rating" state, not an error
	var svcStats *domain.ServiceRatingStats
	if st, ok := stats[svc.ID]; ok {
		svcStats = &st
	}

	return domain.ScoredDeal{
		Service:  svc,
		Score:    Score(svc, svcStats, discount, cfg),
		Discount: discount,
		Price:    price,
	}, nil
}
