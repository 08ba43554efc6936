package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
)

func (s SubscriptionStatus) IsValid() bool {
	switch s {
	case SubscriptionStatusActive, SubscriptionStatusExpired,
		SubscriptionStatusCancelled, SubscriptionStatusPaused:
		return true
	}
	return false
}

// Subscription is a membership, punch card or trial attached to a member.
// Punch cards track TotalUnits/RemainingUnits, time-based memberships use
// StartDate/EndDate.
type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID uuid.UUID `gorm:"type:uuid;index;not null" json:"member_id"`

	Name           string             `gorm:"not null" json:"name"`
	Type           string             `gorm:"type:varchar(20);not null" json:"type"` // monthly, punch_card, trial
	StartDate      time.Time          `gorm:"not null" json:"start_date"`
	EndDate        *time.Time         `json:"end_date"`
	TotalUnits     *int               `json:"total_units"`
	RemainingUnits *int               `json:"remaining_units"`
	Price          float64            `gorm:"type:decimal(10,2);not null" json:"price"`
	Status         SubscriptionStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
	Notes          string             `gorm:"type:text" json:"notes"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SubscriptionStatusActive
	}
	return
}
