package domain

import "time"

const (
	ConsultationStatusScheduled = "scheduled"
	ConsultationStatusCancelled = "cancelled"
)

// CREATE TABLE public.consultations (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     service_id   BIGINT NOT NULL REFERENCES services(id),
//     agent_id     BIGINT NOT NULL,
//     agent_name   TEXT NOT NULL,
//     agent_email  TEXT NOT NULL,
//     scheduled_at TIMESTAMPTZ NOT NULL,
//     status       TEXT NOT NULL DEFAULT 'scheduled',
//     notes        TEXT,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Consultation struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID   uint64    `gorm:"column:service_id;not null" json:"service_id"`
	AgentID     uint      `gorm:"column:agent_id;not null" json:"agent_id"`
	AgentName   string    `gorm:"column:agent_name;type:text;not null" json:"agent_name"`
	AgentEmail  string    `gorm:"column:agent_email;type:text;not null" json:"agent_email"`
	ScheduledAt time.Time `gorm:"column:scheduled_at;not null" json:"scheduled_at"`
	Status      string    `gorm:"column:status;not null;default:scheduled" json:"status"`
	Notes       string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Consultation) TableName() string {
	return "consultations"
}
