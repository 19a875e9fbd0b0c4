package domain

import (
	"time"
)

// CREATE TABLE public.vendors (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name                TEXT NOT NULL,
//     rating              NUMERIC DEFAULT 0,
//     review_count        INT DEFAULT 0,
//     is_verified         BOOLEAN DEFAULT FALSE,
//     is_premium_provider BOOLEAN DEFAULT FALSE,
//     website_url         TEXT,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Vendor struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string    `gorm:"column:name;type:text;not null" json:"name"`
	Rating            float64   `gorm:"column:rating;type:numeric" json:"rating"`
	ReviewCount       int       `gorm:"column:review_count" json:"review_count"`
	IsVerified        bool      `gorm:"column:is_verified;default:false" json:"is_verified"`
	IsPremiumProvider bool      `gorm:"column:is_premium_provider;default:false" json:"is_premium_provider"`
	WebsiteURL        string    `gorm:"column:website_url;type:text" json:"website_url"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Vendor) TableName() string {
	return "vendors"
}
