package deals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agentMarket/domain"
	"agentMarket/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SurfaceTopDeals is the feature-flag key for the top-deals carousel.
const SurfaceTopDeals = "top_deals"

const DefaultPlacement = "top_deals"

// ---- Repository interfaces ----

type ServiceRepository interface {
	FindAllWithVendors(ctx context.Context) ([]domain.Service, error)
	FindByID(ctx context.Context, id uint64) (domain.Service, error)
}

type RatingRepository interface {
	GetStatsByServiceIDs(ctx context.Context, ids []uint64) (map[uint64]domain.ServiceRatingStats, error)
}

type CuratedRepository interface {
	GetByPlacement(ctx context.Context, placement string) ([]domain.CuratedPlacement, error)
}

// DealCache holds a short-lived ranked list per (placement, limit) so every
// page view does not re-rank the whole catalog.
type DealCache interface {
	GetDeals(ctx context.Context, placement string, limit int) ([]domain.ScoredDeal, bool, error)
	SetDeals(ctx context.Context, placement string, limit int, deals []domain.ScoredDeal) error
}

// ---- Usecase / Service ----

type DealsService struct {
	serviceRepo   ServiceRepository
	ratingRepo    RatingRepository
	eventRepo     EventRepository
	curatedRepo   CuratedRepository
	cfgRepo       ConfigRepository
	flagRepo      FlagRepository
	impressions   ImpressionStore
	cache         DealCache
	eligChecker   EligibilityChecker
	defaultCfg    Config
	clickTokenKey string
	impressionTTL time.Duration
}

func NewDealsService(
	serviceRepo ServiceRepository,
	ratingRepo RatingRepository,
	eventRepo EventRepository,
	curatedRepo CuratedRepository,
	cfgRepo ConfigRepository,
	flagRepo FlagRepository,
	impressions ImpressionStore,
	cache DealCache,
	eligChecker EligibilityChecker,
	defaultCfg Config,
	clickTokenKey string,
	impressionTTL time.Duration,
) *DealsService {
	return &DealsService{
		serviceRepo:   serviceRepo,
		ratingRepo:    ratingRepo,
		eventRepo:     eventRepo,
		curatedRepo:   curatedRepo,
		cfgRepo:       cfgRepo,
		flagRepo:      flagRepo,
		impressions:   impressions,
		cache:         cache,
		eligChecker:   eligChecker,
		defaultCfg:    defaultCfg,
		clickTokenKey: clickTokenKey,
		impressionTTL: impressionTTL,
	}
}

// TopDeals returns the ranked, bounded deal list for a placement and records
// one impression per sponsored entry for this view. viewID identifies the
// display cycle; re-requests with the same viewID do not re-emit impressions.
func (s *DealsService) TopDeals(ctx context.Context, placement, viewID string, limit int) ([]domain.ScoredDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if placement == "" {
		placement = DefaultPlacement
	}

	// surface kill switch; an unreachable flag store fails open
	if s.flagRepo != nil {
		enabled, err := s.flagRepo.IsEnabled(ctx, SurfaceTopDeals)
		if err != nil {
			logger.Warn("feature flag lookup failed, serving deals",
				"surface", SurfaceTopDeals,
				"error", err.Error(),
			)
		} else if !enabled {
			return []domain.ScoredDeal{}, nil
		}
	}

	cfg := s.loadConfig(ctx, placement)
	if limit <= 0 || limit > cfg.MaxDeals {
		limit = cfg.MaxDeals
	}

	deals, cached := s.cachedDeals(ctx, placement, limit)
	if !cached {
		var err error
		deals, err = s.rankDeals(ctx, placement, cfg, limit)
		if err != nil {
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.SetDeals(ctx, placement, limit, deals); err != nil {
				logger.Warn("failed to cache top deals", "error", err.Error())
			}
		}
	}

	s.attachClickTokens(deals, placement)
	s.recordImpressions(ctx, deals, placement, viewID)

	return deals, nil
}

func (s *DealsService) cachedDeals(ctx context.Context, placement string, limit int) ([]domain.ScoredDeal, bool) {
	if s.cache == nil {
		return nil, false
	}

	deals, ok, err := s.cache.GetDeals(ctx, placement, limit)
	if err != nil {
		logger.Warn("top deals cache read failed", "error", err.Error())
		return nil, false
	}

	return deals, ok
}

func (s *DealsService) rankDeals(ctx context.Context, placement string, cfg Config, limit int) ([]domain.ScoredDeal, error) {
	services, err := s.serviceRepo.FindAllWithVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deal candidates: %w", err)
	}
	if len(services) == 0 {
		return []domain.ScoredDeal{}, nil
	}

	if s.eligChecker != nil {
		eligible := make([]domain.Service, 0, len(services))
		for _, svc := range services {
			ok, err := s.eligChecker.IsEligible(ctx, svc, placement)
			if err != nil || !ok {
				continue
			}
			eligible = append(eligible, svc)
		}
		services = eligible
	}

	ids := make([]uint64, 0, len(services))
	for _, svc := range services {
		ids = append(ids, svc.ID)
	}

	stats, err := s.ratingRepo.GetStatsByServiceIDs(ctx, ids)
	if err != nil {
		logger.Warn("rating stats unavailable, ranking without ratings", "error", err.Error())
		stats = map[uint64]domain.ServiceRatingStats{}
	}

	deals := SelectDeals(services, stats, cfg, limit)

	return s.applyCurated(ctx, placement, services, stats, cfg, deals, limit), nil
}

// applyCurated promotes admin-pinned services ahead of the organic ranking.
// Pins that are not deal candidates are skipped; the combined list keeps the
// configured bound.
func (s *DealsService) applyCurated(
	ctx context.Context,
	placement string,
	candidates []domain.Service,
	stats map[uint64]domain.ServiceRatingStats,
	cfg Config,
	organic []domain.ScoredDeal,
	limit int,
) []domain.ScoredDeal {
	if s.curatedRepo == nil {
		return organic
	}

	pins, err := s.curatedRepo.GetByPlacement(ctx, placement)
	if err != nil {
		logger.Warn("curated placements unavailable", "error", err.Error())
		return organic
	}
	if len(pins) == 0 {
		return organic
	}

	byID := make(map[uint64]domain.Service, len(candidates))
	for _, svc := range candidates {
		byID[svc.ID] = svc
	}

	out := make([]domain.ScoredDeal, 0, limit)
	pinned := make(map[uint64]bool, len(pins))

	for _, pin := range pins {
		if len(out) >= limit {
			break
		}

		svc, ok := byID[pin.ServiceID]
		if !ok || !IsDealCandidate(svc) || pinned[svc.ID] {
			continue
		}

		deal, err := enrichDeal(svc, stats, cfg)
		if err != nil {
			logger.Warn("dropping pinned deal", "service_id", svc.ID, "error", err.Error())
			continue
		}

		deal.Pinned = true
		out = append(out, deal)
		pinned[svc.ID] = true
	}

	for _, deal := range organic {
		if len(out) >= limit {
			break
		}
		if pinned[deal.Service.ID] {
			continue
		}
		out = append(out, deal)
	}

	return out
}

func (s *DealsService) attachClickTokens(deals []domain.ScoredDeal, placement string) {
	if s.clickTokenKey == "" {
		return
	}

	for i := range deals {
		if !deals[i].Service.IsSponsored {
			continue
		}

		token, err := EncodeClickToken(ClickToken{
			ServiceID: deals[i].Service.ID,
			Placement: placement,
			IssuedAt:  time.Now(),
		}, s.clickTokenKey)
		if err != nil {
			logger.Error("failed to encode click token", "service_id", deals[i].Service.ID, "error", err.Error())
			continue
		}

		deals[i].ClickToken = token
	}
}

// recordImpressions emits at most one impression per (service, placement,
// view) for the sponsored entries of a served list. Tracking failures degrade
// silently; they never surface to the caller.
func (s *DealsService) recordImpressions(ctx context.Context, deals []domain.ScoredDeal, placement, viewID string) {
	if viewID == "" || s.eventRepo == nil {
		return
	}

	for _, deal := range deals {
		if !deal.Service.IsSponsored {
			continue
		}

		if s.impressions != nil {
			first, err := s.impressions.MarkSeen(ctx, impressionKey(deal.Service.ID, placement, viewID), s.impressionTTL)
			if err != nil {
				// without dedup we would rather miss an impression than double-count
				logger.Warn("impression dedup unavailable, skipping", "error", err.Error())
				continue
			}
			if !first {
				continue
			}
		}

		event := domain.DealEvent{
			ID:        uuid.NewString(),
			ServiceID: deal.Service.ID,
			Placement: placement,
			ViewID:    viewID,
			EventType: domain.EventImpression,
			Context: datatypes.JSONMap{
				"surface": SurfaceTopDeals,
				"pinned":  deal.Pinned,
			},
		}

		if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
			logger.Error("failed to save impression event", "service_id", deal.Service.ID, "error", err.Error())
			continue
		}

		DealEventsTotal.WithLabelValues(placement, domain.EventImpression).Inc()
	}
}

// TrackEvent records a client-reported impression or click. Impressions are
// accepted only for sponsored services and deduplicated per display cycle;
// clicks are always recorded.
func (s *DealsService) TrackEvent(ctx context.Context, event domain.DealEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if event.EventType != domain.EventImpression && event.EventType != domain.EventClick {
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}
	if event.ServiceID == 0 {
		return errors.New("service id is required")
	}
	if event.Placement == "" {
		event.Placement = DefaultPlacement
	}

	svc, err := s.serviceRepo.FindByID(ctx, event.ServiceID)
	if err != nil {
		return err
	}

	if event.EventType == domain.EventImpression {
		// non-sponsored items carry no tracking obligation
		if !svc.IsSponsored {
			return nil
		}

		if s.impressions != nil && event.ViewID != "" {
			first, err := s.impressions.MarkSeen(ctx, impressionKey(event.ServiceID, event.Placement, event.ViewID), s.impressionTTL)
			if err != nil {
				logger.Warn("impression dedup unavailable, skipping", "error", err.Error())
				return nil
			}
			if !first {
				return nil
			}
		}
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to save deal event: %w", err)
	}

	DealEventsTotal.WithLabelValues(event.Placement, event.EventType).Inc()

	return nil
}

// ResolveClick validates a sponsored click token, records the click, and
// returns the target service for the redirect.
func (s *DealsService) ResolveClick(ctx context.Context, token, viewID string) (domain.Service, error) {
	if err := ctx.Err(); err != nil {
		return domain.Service{}, fmt.Errorf("context error: %w", err)
	}

	decoded, err := DecodeClickToken(token, s.clickTokenKey)
	if err != nil {
		return domain.Service{}, err
	}

	svc, err := s.serviceRepo.FindByID(ctx, decoded.ServiceID)
	if err != nil {
		return domain.Service{}, err
	}

	event := domain.DealEvent{
		ID:        uuid.NewString(),
		ServiceID: svc.ID,
		Placement: decoded.Placement,
		ViewID:    viewID,
		EventType: domain.EventClick,
		Context: datatypes.JSONMap{
			"surface":   SurfaceTopDeals,
			"issued_at": decoded.IssuedAt.Format(time.RFC3339),
		},
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		// the redirect still goes through; losing one click is acceptable
		logger.Error("failed to save click event", "service_id", svc.ID, "error", err.Error())
	} else {
		DealEventsTotal.WithLabelValues(decoded.Placement, domain.EventClick).Inc()
	}

	return svc, nil
}
