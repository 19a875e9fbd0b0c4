package catalog

import (
	"context"
	"errors"
	"testing"

	"agentMarket/domain"
)

type fakeServiceRepo struct {
	services map[uint64]domain.Service
	nextID   uint64
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[uint64]domain.Service{}, nextID: 1}
}

func (f *fakeServiceRepo) Create(ctx context.Context, service *domain.Service) error {
	service.ID = f.nextID
	f.nextID++
	f.services[service.ID] = *service
	return nil
}

func (f *fakeServiceRepo) FindByID(ctx context.Context, id uint64) (domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return domain.Service{}, errors.New("service not found")
	}
	return svc, nil
}

func (f *fakeServiceRepo) FindAll(ctx context.Context) ([]domain.Service, error) {
	out := []domain.Service{}
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeServiceRepo) FindByCategory(ctx context.Context, category string) ([]domain.Service, error) {
	out := []domain.Service{}
	for _, svc := range f.services {
		if svc.Category == category {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(ctx context.Context, service *domain.Service) error {
	if _, ok := f.services[service.ID]; !ok {
		return errors.New("service not found")
	}
	f.services[service.ID] = *service
	return nil
}

func (f *fakeServiceRepo) Delete(ctx context.Context, id uint64) error {
	delete(f.services, id)
	return nil
}

type fakeTierRepo struct {
	tiers map[uint64][]domain.PricingTier
}

func (f *fakeTierRepo) FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.PricingTier, error) {
	if f.tiers == nil {
		return []domain.PricingTier{}, nil
	}
	return f.tiers[serviceID], nil
}

func (f *fakeTierRepo) ReplaceForService(ctx context.Context, serviceID uint64, tiers []domain.PricingTier) error {
	if f.tiers == nil {
		f.tiers = map[uint64][]domain.PricingTier{}
	}
	f.tiers[serviceID] = tiers
	return nil
}

type fakeReviewRepo struct {
	reviews []domain.ServiceReview
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.ServiceReview) error {
	review.ID = uint64(len(f.reviews) + 1)
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) FindByServiceID(ctx context.Context, serviceID uint64) ([]domain.ServiceReview, error) {
	out := []domain.ServiceReview{}
	for _, review := range f.reviews {
		if review.ServiceID == serviceID {
			out = append(out, review)
		}
	}
	return out, nil
}

func newTestCatalog() (*catalogService, *fakeServiceRepo) {
	repo := newFakeServiceRepo()
	return NewCatalogService(repo, &fakeTierRepo{}, &fakeReviewRepo{}), repo
}

func TestCreateServiceValidatesRespaLimit(t *testing.T) {
	svc, _ := newTestCatalog()

	_, err := svc.CreateService(context.Background(), &domain.Service{
		Title:           "Title Insurance",
		RespaSplitLimit: 130,
	})
	if err == nil {
		t.Fatalf("expected error for respa split limit above 100")
	}

	_, err = svc.CreateService(context.Background(), &domain.Service{
		Title:           "Title Insurance",
		RespaSplitLimit: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateServiceCopayNeedsSplit(t *testing.T) {
	svc, _ := newTestCatalog()

	_, err := svc.CreateService(context.Background(), &domain.Service{
		Title:        "Staging",
		CopayAllowed: true,
	})
	if err == nil {
		t.Fatalf("expected error for co-pay service without a split limit")
	}
}

func TestSetPricingTiersSinglePopular(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService(context.Background(), &domain.Service{Title: "CRM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	twoPopular := []domain.PricingTier{
		{Name: "Basic", Price: "$29", DurationUnit: domain.DurationMonthly, IsPopular: true},
		{Name: "Pro", Price: "$59", DurationUnit: domain.DurationMonthly, IsPopular: true},
	}
	if _, err := svc.SetPricingTiers(context.Background(), created.ID, twoPopular); err == nil {
		t.Fatalf("expected error for two popular tiers")
	}

	onePopular := []domain.PricingTier{
		{Name: "Basic", Price: "$29", DurationUnit: domain.DurationMonthly, Position: 2},
		{Name: "Pro", Price: "$59", DurationUnit: domain.DurationMonthly, IsPopular: true, Position: 1},
	}
	tiers, err := svc.SetPricingTiers(context.Background(), created.ID, onePopular)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tiers) != 2 {
		t.Fatalf("expected 2 tiers, got %d", len(tiers))
	}
	if tiers[0].Name != "Pro" {
		t.Fatalf("tiers must come back ordered by position, got %q first", tiers[0].Name)
	}
	for _, tier := range tiers {
		if tier.ServiceID != created.ID {
			t.Fatalf("tier not bound to service: %+v", tier)
		}
	}
}

func TestSetPricingTiersRejectsBadDuration(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService(context.Background(), &domain.Service{Title: "CRM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.SetPricingTiers(context.Background(), created.ID, []domain.PricingTier{
		{Name: "Basic", Price: "$29", DurationUnit: "weekly"},
	})
	if err == nil {
		t.Fatalf("expected error for invalid duration unit")
	}
}

func TestAddReviewValidatesRating(t *testing.T) {
	svc, _ := newTestCatalog()

	created, err := svc.CreateService(context.Background(), &domain.Service{Title: "CRM"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.AddReview(context.Background(), &domain.ServiceReview{
		ServiceID: created.ID,
		AgentID:   3,
		Rating:    6,
	})
	if err == nil {
		t.Fatalf("expected error for rating above 5")
	}

	review, err := svc.AddReview(context.Background(), &domain.ServiceReview{
		ServiceID: created.ID,
		AgentID:   3,
		Rating:    4,
		Comment:   "solid tool",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.ID == 0 {
		t.Fatalf("expected persisted review to get an id")
	}
}
