package deals

import (
	"testing"

	"agentMarket/domain"
)

func TestScoreWeightedSum(t *testing.T) {
	cfg := DefaultConfig()
	svc := domain.Service{IsFeatured: true}
	stats := &domain.ServiceRatingStats{AverageRating: 4.5, TotalReviews: 12}

	// 25*0.3 + 4.5*10 + 20 = 72.5
	got := Score(svc, stats, 25, cfg)
	if got != 72.5 {
		t.Fatalf("expected score 72.5, got %v", got)
	}
}

func TestScoreNoStats(t *testing.T) {
	cfg := DefaultConfig()

	got := Score(domain.Service{}, nil, 10, cfg)
	if got != 3.0 {
		t.Fatalf("expected score 3.0 from discount only, got %v", got)
	}
}

func TestScoreBrandBonus(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrandNames = []string{"acme"}

	withBrand := domain.Service{Vendor: &domain.Vendor{Name: "ACME Title Co"}}
	noBrand := domain.Service{Vendor: &domain.Vendor{Name: "Other Title Co"}}

	gotBrand := Score(withBrand, nil, 0, cfg)
	gotOther := Score(noBrand, nil, 0, cfg)

	if gotBrand != cfg.BrandBonus*10 {
		t.Fatalf("expected brand score %v, got %v", cfg.BrandBonus*10, gotBrand)
	}
	if gotOther != 0 {
		t.Fatalf("expected no brand score, got %v", gotOther)
	}
}

func TestScoreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	svc := domain.Service{
		IsFeatured:   true,
		IsSponsored:  true,
		CopayAllowed: true,
		Vendor:       &domain.Vendor{Name: "Keller Williams Realty"},
	}
	stats := &domain.ServiceRatingStats{AverageRating: 3.7}

	first := Score(svc, stats, 42, cfg)
	for i := 0; i < 100; i++ {
		if got := Score(svc, stats, 42, cfg); got != first {
			t.Fatalf("score not deterministic: %v vs %v", got, first)
		}
	}
}

// score must be monotonically non-decreasing in discount, rating and each
// boolean bonus while everything else is held fixed.
func TestScoreMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	base := domain.Service{}
	stats := &domain.ServiceRatingStats{AverageRating: 2.0}

	low := Score(base, stats, 10, cfg)
	if Score(base, stats, 20, cfg) < low {
		t.Fatalf("score decreased when discount increased")
	}

	if Score(base, &domain.ServiceRatingStats{AverageRating: 4.0}, 10, cfg) < low {
		t.Fatalf("score decreased when rating increased")
	}

	flags := []domain.Service{
		{IsFeatured: true},
		{CopayAllowed: true},
		{IsSponsored: true},
	}
	for i, svc := range flags {
		if Score(svc, stats, 10, cfg) < low {
			t.Fatalf("score decreased when bonus flag %d was set", i)
		}
	}
}
