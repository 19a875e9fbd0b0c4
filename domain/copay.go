package domain

import "time"

const (
	CoPayStatusPending  = "pending"
	CoPayStatusApproved = "approved"
	CoPayStatusRejected = "rejected"
)

// CREATE TABLE public.copay_requests (
//     id              BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     service_id      BIGINT NOT NULL REFERENCES services(id),
//     agent_id        BIGINT NOT NULL,
//     requested_split NUMERIC NOT NULL,
//     status          TEXT NOT NULL DEFAULT 'pending',
//     note            TEXT,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     decided_at      TIMESTAMPTZ
// );

// CoPayRequest asks a vendor to subsidize RequestedSplit percent of a
// service's retail price for an agent. The split may never exceed the
// service's respa_split_limit.
type CoPayRequest struct {
	ID             uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID      uint64     `gorm:"column:service_id;not null" json:"service_id"`
	AgentID        uint       `gorm:"column:agent_id;not null" json:"agent_id"`
	RequestedSplit float64    `gorm:"column:requested_split;type:numeric;not null" json:"requested_split"`
	Status         string     `gorm:"column:status;not null;default:pending" json:"status"`
	Note           string     `gorm:"column:note;type:text" json:"note"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"created_at"`
	DecidedAt      *time.Time `gorm:"column:decided_at" json:"decided_at"`
}

func (CoPayRequest) TableName() string {
	return "copay_requests"
}
