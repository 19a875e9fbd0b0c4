package deals

import (
	"testing"

	"agentMarket/domain"
)

func TestSavingsVerifiedProPrice(t *testing.T) {
	svc := domain.Service{
		RetailPrice: "$100.00",
		ProPrice:    "$75.00",
		IsVerified:  true,
	}

	discount, price := Savings(svc)

	if discount != 25 {
		t.Fatalf("expected discount 25, got %d", discount)
	}
	if price.AmountCents != 7500 {
		t.Fatalf("expected effective price 7500, got %d", price.AmountCents)
	}
	if price.Label != PriceLabelPro {
		t.Fatalf("expected label %q, got %q", PriceLabelPro, price.Label)
	}
}

func TestSavingsCoPaySplit(t *testing.T) {
	svc := domain.Service{
		RetailPrice:     "$200",
		RespaSplitLimit: 40,
		CopayAllowed:    true,
	}

	discount, price := Savings(svc)

	if discount != 0 {
		t.Fatalf("expected no discount without verified pro price, got %d", discount)
	}
	if price.AmountCents != 12000 {
		t.Fatalf("expected co-pay price 12000, got %d", price.AmountCents)
	}
	if price.Label != PriceLabelCoPay {
		t.Fatalf("expected label %q, got %q", PriceLabelCoPay, price.Label)
	}
}

func TestSavingsUnverifiedGetsNoDiscount(t *testing.T) {
	svc := domain.Service{
		RetailPrice: "$100.00",
		ProPrice:    "$75.00",
		IsVerified:  false,
	}

	discount, price := Savings(svc)

	if discount != 0 {
		t.Fatalf("expected discount 0 for unverified service, got %d", discount)
	}
	if price.Label != PriceLabelRetail || price.AmountCents != 10000 {
		t.Fatalf("expected retail 10000, got %q %d", price.Label, price.AmountCents)
	}
}

func TestSavingsDiscountClamped(t *testing.T) {
	// pro above retail must not produce a negative discount
	svc := domain.Service{
		RetailPrice: "$50.00",
		ProPrice:    "$80.00",
		IsVerified:  true,
	}

	discount, _ := Savings(svc)
	if discount != 0 {
		t.Fatalf("expected clamped discount 0, got %d", discount)
	}
}

func TestSavingsMissingRetailFallsBack(t *testing.T) {
	svc := domain.Service{
		ProPrice: "$30.00",
	}

	discount, price := Savings(svc)

	if discount != 0 {
		t.Fatalf("expected discount 0, got %d", discount)
	}
	if price.AmountCents != 3000 || price.Label != PriceLabelPro {
		t.Fatalf("expected pro fallback 3000, got %q %d", price.Label, price.AmountCents)
	}
}

func TestSavingsNoPricesAtAll(t *testing.T) {
	discount, price := Savings(domain.Service{})

	if discount != 0 || price.AmountCents != 0 {
		t.Fatalf("expected zero discount and price, got %d / %d", discount, price.AmountCents)
	}
}

func TestSavingsSplitAboveHundredClamped(t *testing.T) {
	svc := domain.Service{
		RetailPrice:     "$100.00",
		RespaSplitLimit: 150,
		CopayAllowed:    true,
	}

	_, price := Savings(svc)

	if price.AmountCents != 0 {
		t.Fatalf("co-pay price must not go below zero, got %d", price.AmountCents)
	}
	if price.Label != PriceLabelCoPay {
		t.Fatalf("expected label %q, got %q", PriceLabelCoPay, price.Label)
	}
}
