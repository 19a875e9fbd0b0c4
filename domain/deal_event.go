package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.deal_events (
//     id          UUID PRIMARY KEY,
//     service_id  BIGINT NOT NULL,
//     placement   TEXT NOT NULL,
//     view_id     TEXT NOT NULL,
//     event_type  TEXT NOT NULL,  -- impression | click
//     context     JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

const (
	EventImpression = "impression"
	EventClick      = "click"
)

// DealEvent is one sponsored impression or click, appended to the tracking
// log. ViewID identifies the display cycle the event belongs to.
type DealEvent struct {
	ID        string            `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ServiceID uint64            `gorm:"column:service_id;not null" json:"service_id"`
	Placement string            `gorm:"column:placement;not null" json:"placement"`
	ViewID    string            `gorm:"column:view_id;not null" json:"view_id"`
	EventType string            `gorm:"column:event_type;not null" json:"event_type"`
	Context   datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DealEvent) TableName() string {
	return "deal_events"
}
