// models/notification_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationLog records the outcome of every outbound message so failed
// deliveries stay visible to the operator. A failed email never fails the
// admin action that triggered it.
type NotificationLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BookingID    *uuid.UUID `gorm:"type:uuid;index" json:"booking_id"`
	MemberID     *uuid.UUID `gorm:"type:uuid;index" json:"member_id"`
	Type         string     `gorm:"type:varchar(30)" json:"type"` // confirmation, cancellation, intake, expiry, overdue
	Recipient    string     `json:"recipient"`
	Channel      string     `gorm:"type:varchar(20)" json:"channel"` // email, sms, whatsapp
	Status       string     `gorm:"type:varchar(20)" json:"status"`  // sent, failed
	ErrorMessage string     `gorm:"type:text" json:"error_message"`
	SentAt       time.Time  `json:"sent_at"`
	CreatedAt    time.Time  `json:"-"`
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	n.ID = uuid.New()
	return
}
