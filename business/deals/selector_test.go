package deals

import (
	"reflect"
	"testing"

	"agentMarket/domain"
)

func candidateService(id uint64, discountRetail, discountPro string) domain.Service {
	return domain.Service{
		ID:          id,
		RetailPrice: discountRetail,
		ProPrice:    discountPro,
		IsVerified:  true,
	}
}

func TestIsDealCandidate(t *testing.T) {
	cases := []struct {
		name string
		svc  domain.Service
		want bool
	}{
		{"affiliate", domain.Service{IsAffiliate: true}, true},
		{"copay split", domain.Service{RespaSplitLimit: 30}, true},
		{"verified with pro price", domain.Service{IsVerified: true, ProPrice: "$10"}, true},
		{"verified without pro price", domain.Service{IsVerified: true}, false},
		{"unverified with pro price", domain.Service{ProPrice: "$10"}, false},
		{"nothing", domain.Service{}, false},
	}

	for _, tc := range cases {
		if got := IsDealCandidate(tc.svc); got != tc.want {
			t.Fatalf("%s: IsDealCandidate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSelectDealsSortsByScoreDescending(t *testing.T) {
	services := []domain.Service{
		candidateService(1, "$100.00", "$90.00"), // discount 10
		candidateService(2, "$100.00", "$50.00"), // discount 50
		candidateService(3, "$100.00", "$75.00"), // discount 25
	}

	deals := SelectDeals(services, nil, DefaultConfig(), 0)

	if len(deals) != 3 {
		t.Fatalf("expected 3 deals, got %d", len(deals))
	}

	wantOrder := []uint64{2, 3, 1}
	for i, want := range wantOrder {
		if deals[i].Service.ID != want {
			t.Fatalf("position %d: expected service %d, got %d", i, want, deals[i].Service.ID)
		}
	}
}

func TestSelectDealsStableTieBreak(t *testing.T) {
	// identical services score identically; input order must survive
	services := []domain.Service{
		candidateService(7, "$100.00", "$80.00"),
		candidateService(8, "$100.00", "$80.00"),
		candidateService(9, "$100.00", "$80.00"),
	}

	deals := SelectDeals(services, nil, DefaultConfig(), 0)

	wantOrder := []uint64{7, 8, 9}
	for i, want := range wantOrder {
		if deals[i].Service.ID != want {
			t.Fatalf("tie-break not stable at %d: expected %d, got %d", i, want, deals[i].Service.ID)
		}
	}
}

func TestSelectDealsTruncates(t *testing.T) {
	services := make([]domain.Service, 0, 30)
	for i := uint64(1); i <= 30; i++ {
		services = append(services, candidateService(i, "$100.00", "$70.00"))
	}

	deals := SelectDeals(services, nil, DefaultConfig(), 0)
	if len(deals) != defaultMaxDeals {
		t.Fatalf("expected %d deals, got %d", defaultMaxDeals, len(deals))
	}

	deals = SelectDeals(services, nil, DefaultConfig(), 5)
	if len(deals) != 5 {
		t.Fatalf("expected 5 deals, got %d", len(deals))
	}
}

func TestSelectDealsExcludesNonCandidates(t *testing.T) {
	services := []domain.Service{
		{ID: 1, ProPrice: "$75.00"}, // not verified, not affiliate, no split
		candidateService(2, "$100.00", "$75.00"),
	}

	deals := SelectDeals(services, nil, DefaultConfig(), 0)

	if len(deals) != 1 || deals[0].Service.ID != 2 {
		t.Fatalf("expected only service 2, got %+v", deals)
	}
}

func TestSelectDealsDropsFailingItem(t *testing.T) {
	services := []domain.Service{
		candidateService(1, "$100.00", "$90.00"),
		candidateService(2, "$100.00", "$50.00"),
		candidateService(3, "$100.00", "$75.00"),
	}

	cfg := DefaultConfig()
	enrich := func(svc domain.Service) (domain.ScoredDeal, error) {
		if svc.ID == 2 {
			panic("corrupt record")
		}
		return enrichDeal(svc, nil, cfg)
	}

	deals := selectDeals(services, cfg, 0, enrich)

	if len(deals) != 2 {
		t.Fatalf("expected 2 surviving deals, got %d", len(deals))
	}
	if deals[0].Service.ID != 3 || deals[1].Service.ID != 1 {
		t.Fatalf("surviving deals out of order: %d, %d", deals[0].Service.ID, deals[1].Service.ID)
	}
}

func TestSelectDealsIdempotent(t *testing.T) {
	services := []domain.Service{
		candidateService(1, "$120.00", "$90.00"),
		{ID: 2, IsAffiliate: true, RetailPrice: "$40.00"},
		candidateService(3, "$80.00", "$60.00"),
	}
	stats := map[uint64]domain.ServiceRatingStats{
		1: {ServiceID: 1, AverageRating: 4.2, TotalReviews: 9},
		3: {ServiceID: 3, AverageRating: 3.1, TotalReviews: 2},
	}

	first := SelectDeals(services, stats, DefaultConfig(), 0)
	second := SelectDeals(services, stats, DefaultConfig(), 0)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("SelectDeals not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestSelectDealsRatingFeedsScore(t *testing.T) {
	services := []domain.Service{
		candidateService(1, "$100.00", "$80.00"),
		candidateService(2, "$100.00", "$80.00"),
	}
	stats := map[uint64]domain.ServiceRatingStats{
		2: {ServiceID: 2, AverageRating: 5, TotalReviews: 40},
	}

	deals := SelectDeals(services, stats, DefaultConfig(), 0)

	if deals[0].Service.ID != 2 {
		t.Fatalf("rated service should outrank unrated twin, got %d first", deals[0].Service.ID)
	}
}
