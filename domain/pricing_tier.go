package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.pricing_tiers (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     service_id      BIGINT NOT NULL REFERENCES services(id),
//     name            TEXT NOT NULL,
//     description     TEXT,
//     price           TEXT NOT NULL,
//     original_price  TEXT,
//     duration_unit   TEXT NOT NULL,  -- mo | yr | one-time
//     features        JSONB,
//     is_popular      BOOLEAN DEFAULT FALSE,
//     button_label    TEXT,
//     badge           TEXT,
//     position        INT NOT NULL,
//     created_at      TIMESTAMPTZ DEFAULT NOW()
// );

const (
	DurationMonthly = "mo"
	DurationYearly  = "yr"
	DurationOneTime = "one-time"
)

// TierFeature is one bullet in a tier's feature list, stored as JSONB.
type TierFeature struct {
	Text       string `json:"text"`
	Included   bool   `json:"included"`
	RenderHTML bool   `json:"render_html,omitempty"`
}

// PricingTier is one selectable purchase option within a service. Ordering is
// by Position, not insertion order.
type PricingTier struct {
	ID            uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID     uint64         `gorm:"column:service_id;not null" json:"service_id"`
	Name          string         `gorm:"column:name;type:text;not null" json:"name"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Price         string         `gorm:"column:price;type:text;not null" json:"price"`
	OriginalPrice string         `gorm:"column:original_price;type:text" json:"original_price"`
	DurationUnit  string         `gorm:"column:duration_unit;type:text;not null" json:"duration_unit"`
	Features      datatypes.JSON `gorm:"column:features;type:jsonb" json:"features"`
	IsPopular     bool           `gorm:"column:is_popular;default:false" json:"is_popular"`
	ButtonLabel   string         `gorm:"column:button_label;type:text" json:"button_label"`
	Badge         string         `gorm:"column:badge;type:text" json:"badge"`
	Position      int            `gorm:"column:position;not null" json:"position"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
}

func (PricingTier) TableName() string {
	return "pricing_tiers"
}
