package domain

// ServiceRatingStats is the read-only rating aggregate for one service,
// derived from service_reviews.
type ServiceRatingStats struct {
	ServiceID     uint64  `json:"service_id"`
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int     `json:"total_reviews"`
}

// DealPrice is the display price chosen for a deal, in minor units, plus the
// basis that produced it ("co-pay", "pro" or "retail").
type DealPrice struct {
	AmountCents int64  `json:"amount_cents"`
	Label       string `json:"label"`
}

// ScoredDeal is a Service augmented with its ranking score and derived
// pricing. It is built per ranking pass and never persisted. ClickToken is
// set only for sponsored entries and feeds the click-through redirect.
type ScoredDeal struct {
	Service    Service   `json:"service"`
	Score      float64   `json:"score"`
	Discount   int       `json:"discount"`
	Price      DealPrice `json:"deal_price"`
	Pinned     bool      `json:"pinned,omitempty"`
	ClickToken string    `json:"click_token,omitempty"`
}
