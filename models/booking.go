package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is one customer's request for a gym service, created by the
// public booking form and managed from the admin dashboard. Cancellation
// is a status, bookings are never deleted.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string        `gorm:"not null" json:"name"`
	Email         string        `gorm:"not null" json:"email"`
	Phone         string        `json:"phone"`
	Service       string        `gorm:"not null" json:"service"`
	People        int           `gorm:"default:1" json:"people"`
	PreferredDate *time.Time    `json:"preferred_date"`
	Message       string        `gorm:"type:text" json:"message"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	AdminNotes    string        `gorm:"type:text" json:"admin_notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.People <= 0 {
		b.People = 1
	}
	return
}
