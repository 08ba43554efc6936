package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PriceItem is a row of the public price list (memberships, punch cards,
// single sessions).
type PriceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Price    string `gorm:"not null" json:"price"`
	Discount string `json:"discount"` // e.g. "50€ Ersparnis", empty if none
	Category string `gorm:"not null" json:"category"` // personal, group, kids
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	Active   bool   `gorm:"default:true" json:"active"`
}

func (p *PriceItem) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
