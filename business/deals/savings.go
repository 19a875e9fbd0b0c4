package deals

import (
	"math"

	"agentMarket/domain"
)

const (
	PriceLabelCoPay  = "co-pay"
	PriceLabelPro    = "pro"
	PriceLabelRetail = "retail"
)

// Savings derives the discount percentage and the effective display price for
// a service. The discount compares retail against the verified pro price and
// is clamped to [0, 100]. The price label records which basis produced the
// amount so the UI can pick its presentation; the scorer ignores it.
func Savings(svc domain.Service) (int, domain.DealPrice) {
	retail := ParsePrice(svc.RetailPrice)
	pro := ParsePrice(svc.ProPrice)

	discount := 0
	if retail > 0 && pro > 0 && svc.IsVerified {
		discount = int(math.Round(100 * float64(retail-pro) / float64(retail)))
		if discount < 0 {
			discount = 0
		}
		if discount > 100 {
			discount = 100
		}
	}

	return discount, effectivePrice(svc, retail, pro)
}

func effectivePrice(svc domain.Service, retail, pro Cents) domain.DealPrice {
	if svc.CopayAllowed && svc.RespaSplitLimit > 0 && retail > 0 {
		split := svc.RespaSplitLimit
		if split > 100 {
			split = 100
		}
		amount := Cents(math.Round(float64(retail) * (1 - split/100)))
		return domain.DealPrice{AmountCents: int64(amount), Label: PriceLabelCoPay}
	}

	if svc.IsVerified && pro > 0 {
		return domain.DealPrice{AmountCents: int64(pro), Label: PriceLabelPro}
	}

	if retail > 0 {
		return domain.DealPrice{AmountCents: int64(retail), Label: PriceLabelRetail}
	}

	// retail missing: fall back to whatever non-zero price is left
	if pro > 0 {
		return domain.DealPrice{AmountCents: int64(pro), Label: PriceLabelPro}
	}

	return domain.DealPrice{AmountCents: 0, Label: PriceLabelRetail}
}
