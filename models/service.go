package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service is one of the gym's offerings shown on the website
// (Personaltraining, Gruppenkurse, Kinderkurse, ...).
type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title    string      `gorm:"not null" json:"title"`
	Subtitle string      `json:"subtitle"`
	Price    string      `gorm:"not null" json:"price"` // display label, e.g. "ab 45€"
	Features StringArray `gorm:"type:jsonb;default:'[]'" json:"features"`
	Icon     string      `json:"icon"` // Lucide icon name used by the frontend
	Order    int         `gorm:"column:sort_order;default:0" json:"order"`
	Active   bool        `gorm:"default:true" json:"active"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
