package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusOpen      InvoiceStatus = "open"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	MemberID uuid.UUID `gorm:"type:uuid;index;not null" json:"member_id"`

	InvoiceNumber string        `gorm:"uniqueIndex;not null" json:"invoice_number"`
	Description   string        `gorm:"not null" json:"description"`
	Amount        float64       `gorm:"type:decimal(10,2);not null" json:"amount"`
	Status        InvoiceStatus `gorm:"type:varchar(20);default:'open';index" json:"status"`
	DueDate       time.Time     `gorm:"not null" json:"due_date"`
	PaidDate      *time.Time    `json:"paid_date"`
	Notes         string        `gorm:"type:text" json:"notes"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Status == "" {
		i.Status = InvoiceStatusOpen
	}
	return
}
