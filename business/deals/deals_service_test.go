package deals

import (
	"context"
	"errors"
	"testing"
	"time"

	"agentMarket/domain"
)

type fakeServiceRepo struct {
	services []domain.Service
}

func (f *fakeServiceRepo) FindAllWithVendors(ctx context.Context) ([]domain.Service, error) {
	return f.services, nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint64) (domain.Service, error) {
	for _, svc := range f.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return domain.Service{}, errors.New("service not found")
}

type fakeRatingRepo struct {
	stats map[uint64]domain.ServiceRatingStats
}

func (f *fakeRatingRepo) GetStatsByServiceIDs(ctx context.Context, ids []uint64) (map[uint64]domain.ServiceRatingStats, error) {
	if f.stats == nil {
		return map[uint64]domain.ServiceRatingStats{}, nil
	}
	return f.stats, nil
}

type fakeEventRepo struct {
	events []domain.DealEvent
}

func (f *fakeEventRepo) SaveEvent(ctx context.Context, event domain.DealEvent) error {
	f.events = append(f.events, event)
	return nil
}

type fakeFlagRepo struct {
	enabled bool
	err     error
}

func (f *fakeFlagRepo) IsEnabled(ctx context.Context, surface string) (bool, error) {
	return f.enabled, f.err
}

func (f *fakeFlagRepo) SetEnabled(ctx context.Context, surface string, enabled bool) error {
	f.enabled = enabled
	return nil
}

type fakeImpressionStore struct {
	seen map[string]bool
}

func (f *fakeImpressionStore) MarkSeen(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	return true, nil
}

type fakeCuratedRepo struct {
	pins []domain.CuratedPlacement
}

func (f *fakeCuratedRepo) GetByPlacement(ctx context.Context, placement string) ([]domain.CuratedPlacement, error) {
	return f.pins, nil
}

func newTestService(repo *fakeServiceRepo, events *fakeEventRepo, flags *fakeFlagRepo, store *fakeImpressionStore, curated *fakeCuratedRepo) *DealsService {
	var curatedRepo CuratedRepository
	if curated != nil {
		curatedRepo = curated
	}
	return NewDealsService(
		repo,
		&fakeRatingRepo{},
		events,
		curatedRepo,
		nil,
		flags,
		store,
		nil,
		NoopEligibilityChecker{},
		DefaultConfig(),
		"",
		time.Minute,
	)
}

func sponsoredCandidate(id uint64) domain.Service {
	return domain.Service{
		ID:          id,
		RetailPrice: "$100.00",
		ProPrice:    "$75.00",
		IsVerified:  true,
		IsSponsored: true,
	}
}

func TestTopDealsDisabledSurface(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{sponsoredCandidate(1)}}
	events := &fakeEventRepo{}
	svc := newTestService(repo, events, &fakeFlagRepo{enabled: false}, &fakeImpressionStore{}, nil)

	deals, err := svc.TopDeals(context.Background(), "top_deals", "view-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 0 {
		t.Fatalf("expected no deals on disabled surface, got %d", len(deals))
	}
	if len(events.events) != 0 {
		t.Fatalf("disabled surface must not emit events, got %d", len(events.events))
	}
}

func TestTopDealsFlagErrorFailsOpen(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{sponsoredCandidate(1)}}
	svc := newTestService(repo, &fakeEventRepo{}, &fakeFlagRepo{err: errors.New("redis down")}, &fakeImpressionStore{}, nil)

	deals, err := svc.TopDeals(context.Background(), "top_deals", "view-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deals) != 1 {
		t.Fatalf("expected deals despite flag error, got %d", len(deals))
	}
}

func TestTopDealsImpressionOncePerView(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{
		sponsoredCandidate(1),
		{ID: 2, RetailPrice: "$50.00", ProPrice: "$40.00", IsVerified: true}, // not sponsored
	}}
	events := &fakeEventRepo{}
	svc := newTestService(repo, events, &fakeFlagRepo{enabled: true}, &fakeImpressionStore{}, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.TopDeals(context.Background(), "top_deals", "view-1", 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(events.events) != 1 {
		t.Fatalf("expected exactly one impression for the view, got %d", len(events.events))
	}
	if events.events[0].ServiceID != 1 || events.events[0].EventType != domain.EventImpression {
		t.Fatalf("unexpected event: %+v", events.events[0])
	}

	// a new display cycle emits again
	if _, err := svc.TopDeals(context.Background(), "top_deals", "view-2", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.events) != 2 {
		t.Fatalf("expected a second impression for the new view, got %d", len(events.events))
	}
}

func TestTrackEventIgnoresNonSponsoredImpression(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{
		{ID: 5, RetailPrice: "$50.00", IsVerified: true, ProPrice: "$40.00"},
	}}
	events := &fakeEventRepo{}
	svc := newTestService(repo, events, &fakeFlagRepo{enabled: true}, &fakeImpressionStore{}, nil)

	err := svc.TrackEvent(context.Background(), domain.DealEvent{
		ServiceID: 5,
		Placement: "top_deals",
		ViewID:    "view-1",
		EventType: domain.EventImpression,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.events) != 0 {
		t.Fatalf("non-sponsored impression must not be recorded, got %d events", len(events.events))
	}
}

func TestTrackEventClickAlwaysRecorded(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{
		{ID: 5, RetailPrice: "$50.00", IsVerified: true, ProPrice: "$40.00"},
	}}
	events := &fakeEventRepo{}
	svc := newTestService(repo, events, &fakeFlagRepo{enabled: true}, &fakeImpressionStore{}, nil)

	for i := 0; i < 2; i++ {
		err := svc.TrackEvent(context.Background(), domain.DealEvent{
			ServiceID: 5,
			Placement: "top_deals",
			ViewID:    "view-1",
			EventType: domain.EventClick,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(events.events) != 2 {
		t.Fatalf("clicks are never deduplicated, expected 2 events, got %d", len(events.events))
	}
}

func TestTrackEventRejectsUnknownType(t *testing.T) {
	svc := newTestService(&fakeServiceRepo{}, &fakeEventRepo{}, &fakeFlagRepo{enabled: true}, &fakeImpressionStore{}, nil)

	err := svc.TrackEvent(context.Background(), domain.DealEvent{ServiceID: 1, EventType: "hover"})
	if err == nil {
		t.Fatalf("expected error for unknown event type")
	}
}

func TestTopDealsCuratedPinsFirst(t *testing.T) {
	repo := &fakeServiceRepo{services: []domain.Service{
		{ID: 1, RetailPrice: "$100.00", ProPrice: "$50.00", IsVerified: true}, // discount 50, top organic
		{ID: 2, RetailPrice: "$100.00", ProPrice: "$95.00", IsVerified: true}, // discount 5
		{ID: 3, RetailPrice: "$100.00", ProPrice: "$80.00", IsVerified: true}, // discount 20
	}}
	curated := &fakeCuratedRepo{pins: []domain.CuratedPlacement{
		{Placement: "top_deals", ServiceID: 2, Position: 1},
	}}
	svc := newTestService(repo, &fakeEventRepo{}, &fakeFlagRepo{enabled: true}, &fakeImpressionStore{}, curated)

	deals, err := svc.TopDeals(context.Background(), "top_deals", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(deals) != 3 {
		t.Fatalf("expected 3 deals, got %d", len(deals))
	}
	if deals[0].Service.ID != 2 || !deals[0].Pinned {
		t.Fatalf("expected pinned service 2 first, got %d (pinned=%v)", deals[0].Service.ID, deals[0].Pinned)
	}
	if deals[1].Service.ID != 1 || deals[2].Service.ID != 3 {
		t.Fatalf("organic order wrong: %d, %d", deals[1].Service.ID, deals[2].Service.ID)
	}
}
