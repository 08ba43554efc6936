// services/booking_store.go
package services

import (
	"context"
	"errors"
	"time"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingStore implements BookingStore on the shared database handle.
type GormBookingStore struct {
	db *gorm.DB
}

func NewGormBookingStore(db *gorm.DB) *GormBookingStore {
	return &GormBookingStore{db: db}
}

func (s *GormBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *GormBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *GormBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	result := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *GormBookingStore) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	result := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", id).
		Update("admin_notes", notes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *GormBookingStore) List(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GormNotificationSink writes dispatch outcomes to notification_logs.
type GormNotificationSink struct {
	db *gorm.DB
}

func NewGormNotificationSink(db *gorm.DB) *GormNotificationSink {
	return &GormNotificationSink{db: db}
}

func (s *GormNotificationSink) Record(bookingID uuid.UUID, notificationType, recipient, errorMessage string) {
	entry := models.NotificationLog{
		BookingID: &bookingID,
		Type:      notificationType,
		Recipient: recipient,
		Channel:   "email",
		Status:    "sent",
		SentAt:    time.Now(),
	}
	if errorMessage != "" {
		entry.Status = "failed"
		entry.ErrorMessage = errorMessage
	}
	s.db.Create(&entry)
}
