package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is a gym member managed from the admin dashboard, independent of
// the public booking flow.
type Member struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name   string `gorm:"not null" json:"name"`
	Email  string `gorm:"not null" json:"email"`
	Phone  string `json:"phone"`
	Notes  string `gorm:"type:text" json:"notes"`
	Active bool   `gorm:"default:true" json:"active"`

	Subscriptions []Subscription `gorm:"foreignKey:MemberID" json:"subscriptions,omitempty"`
	Invoices      []Invoice      `gorm:"foreignKey:MemberID" json:"invoices,omitempty"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (m *Member) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}
