package services

import (
	"context"
	"testing"
	"time"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Booking{}, &models.NotificationLog{}))
	return db
}

func seedBooking(t *testing.T, db *gorm.DB, status models.BookingStatus) *models.Booking {
	t.Helper()
	booking := &models.Booking{
		Name:    "Max Mustermann",
		Email:   "max@example.com",
		Service: "Personal Training",
		People:  1,
		Status:  status,
	}
	require.NoError(t, db.Create(booking).Error)
	return booking
}

func TestGormBookingStore_InsertDefaults(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormBookingStore(db)

	booking := &models.Booking{
		Name:    "Lisa",
		Email:   "lisa@example.com",
		Service: "Boxen",
	}
	require.NoError(t, store.Insert(context.Background(), booking))

	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, 1, booking.People)
}

func TestGormBookingStore_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormBookingStore(db)

	_, err := store.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGormBookingStore_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormBookingStore(db)
	booking := seedBooking(t, db, models.BookingStatusPending)

	require.NoError(t, store.UpdateStatus(context.Background(), booking.ID, models.BookingStatusConfirmed))

	reloaded, err := store.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)

	err = store.UpdateStatus(context.Background(), uuid.New(), models.BookingStatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGormBookingStore_UpdateNotes_LastWriteWins(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormBookingStore(db)
	booking := seedBooking(t, db, models.BookingStatusConfirmed)

	require.NoError(t, store.UpdateNotes(context.Background(), booking.ID, "erste Notiz"))
	require.NoError(t, store.UpdateNotes(context.Background(), booking.ID, "zweite Notiz"))

	reloaded, err := store.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "zweite Notiz", reloaded.AdminNotes)
	assert.Equal(t, models.BookingStatusConfirmed, reloaded.Status)
}

func TestGormBookingStore_List_FilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormBookingStore(db)

	older := seedBooking(t, db, models.BookingStatusPending)
	db.Model(older).Update("created_at", time.Now().Add(-time.Hour))
	seedBooking(t, db, models.BookingStatusConfirmed)
	newest := seedBooking(t, db, models.BookingStatusPending)
	db.Model(newest).Update("created_at", time.Now().Add(time.Hour))

	all, err := store.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, older.ID, all[2].ID)

	pending, err := store.List(context.Background(), models.BookingStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestGormNotificationSink_Record(t *testing.T) {
	db := setupTestDB(t)
	sink := NewGormNotificationSink(db)
	bookingID := uuid.New()

	sink.Record(bookingID, "confirmation", "max@example.com", "")
	sink.Record(bookingID, "cancellation", "max@example.com", "timeout")

	var sent models.NotificationLog
	require.NoError(t, db.First(&sent, "type = ?", "confirmation").Error)
	assert.Equal(t, "sent", sent.Status)
	assert.Equal(t, "email", sent.Channel)
	assert.Empty(t, sent.ErrorMessage)
	require.NotNil(t, sent.BookingID)
	assert.Equal(t, bookingID, *sent.BookingID)

	var failed models.NotificationLog
	require.NoError(t, db.First(&failed, "type = ?", "cancellation").Error)
	assert.Equal(t, "failed", failed.Status)
	assert.Equal(t, "timeout", failed.ErrorMessage)
}
