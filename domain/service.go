package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.services (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     title               TEXT NOT NULL,
//     description         TEXT,
//     category            TEXT,
//     retail_price        TEXT,
//     pro_price           TEXT,
//     co_pay_price        TEXT,
//     discount_percentage NUMERIC DEFAULT 0,
//     respa_split_limit   NUMERIC DEFAULT 0,
//     copay_allowed       BOOLEAN DEFAULT FALSE,
//     is_verified         BOOLEAN DEFAULT FALSE,
//     is_featured         BOOLEAN DEFAULT FALSE,
//     is_sponsored        BOOLEAN DEFAULT FALSE,
//     is_affiliate        BOOLEAN DEFAULT FALSE,
//     estimated_roi       TEXT,
//     funnel_content      JSONB,
//     vendor_id           BIGINT REFERENCES vendors(id),
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

// Service is a purchasable offering. Prices are decimal-bearing strings as
// delivered by the catalog feed; they are parsed once at the ranking boundary.
// A nil VendorID means a "direct" service with no provider attached.
type Service struct {
	ID                 uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string            `gorm:"column:title;type:text;not null" json:"title"`
	Description        string            `gorm:"column:description;type:text" json:"description"`
	Category           string            `gorm:"column:category;type:text" json:"category"`
	RetailPrice        string            `gorm:"column:retail_price;type:text" json:"retail_price"`
	ProPrice           string            `gorm:"column:pro_price;type:text" json:"pro_price"`
	CoPayPrice         string            `gorm:"column:co_pay_price;type:text" json:"co_pay_price"`
	DiscountPercentage float64           `gorm:"column:discount_percentage;type:numeric" json:"discount_percentage"`
	RespaSplitLimit    float64           `gorm:"column:respa_split_limit;type:numeric" json:"respa_split_limit"`
	CopayAllowed       bool              `gorm:"column:copay_allowed;default:false" json:"copay_allowed"`
	IsVerified         bool              `gorm:"column:is_verified;default:false" json:"is_verified"`
	IsFeatured         bool              `gorm:"column:is_featured;default:false" json:"is_featured"`
	IsSponsored        bool              `gorm:"column:is_sponsored;default:false" json:"is_sponsored"`
	IsAffiliate        bool              `gorm:"column:is_affiliate;default:false" json:"is_affiliate"`
	EstimatedROI       string            `gorm:"column:estimated_roi;type:text" json:"estimated_roi"`
	FunnelContent      datatypes.JSONMap `gorm:"column:funnel_content;type:jsonb" json:"funnel_content"`
	VendorID           *uint64           `gorm:"column:vendor_id" json:"vendor_id"`
	Vendor             *Vendor           `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	PricingTiers       []PricingTier     `gorm:"foreignKey:ServiceID" json:"pricing_tiers,omitempty"`
	CreatedAt          time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}
