package domain

import "time"

// CREATE TABLE public.service_reviews (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     service_id  BIGINT NOT NULL REFERENCES services(id),
//     agent_id    BIGINT NOT NULL,
//     rating      INT NOT NULL,
//     comment     TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

type ServiceReview struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ServiceID uint64    `gorm:"column:service_id;not null" json:"service_id"`
	AgentID   uint      `gorm:"column:agent_id;not null" json:"agent_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ServiceReview) TableName() string {
	return "service_reviews"
}
