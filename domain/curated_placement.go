package domain

// CuratedPlacement pins a service to a merchandising placement ahead of the
// organically ranked deals. Position orders pins within a placement.
type CuratedPlacement struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Placement string `gorm:"column:placement;not null" json:"placement"`
	ServiceID uint64 `gorm:"column:service_id;not null" json:"service_id"`
	Position  int    `gorm:"column:position;not null" json:"position"`
}

func (CuratedPlacement) TableName() string {
	return "curated_placements"
}
