package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock store
type MockBookingStore struct {
	mock.Mock
}

func (m *MockBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New() // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingStore) UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingStore) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error {
	args := m.Called(ctx, id, notes)
	return args.Error(0)
}

func (m *MockBookingStore) List(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

// Mock notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendConfirmation(ctx context.Context, booking *models.Booking, personalMessage string) error {
	args := m.Called(ctx, booking, personalMessage)
	return args.Error(0)
}

func (m *MockNotifier) SendCancellation(ctx context.Context, booking *models.Booking, personalMessage string) error {
	args := m.Called(ctx, booking, personalMessage)
	return args.Error(0)
}

func (m *MockNotifier) SendIntakePair(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// Mock sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Record(bookingID uuid.UUID, notificationType, recipient, errorMessage string) {
	m.Called(bookingID, notificationType, recipient, errorMessage)
}

func pendingBooking() *models.Booking {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	return &models.Booking{
		ID:            uuid.New(),
		Name:          "Max Mustermann",
		Email:         "a@x.com",
		Service:       "Boxen",
		People:        2,
		PreferredDate: &date,
		Status:        models.BookingStatusPending,
	}
}

func TestTransition_PendingToConfirmed_SendsConfirmation(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	sink := new(MockSink)
	svc := NewBookingLifecycleService(store, notifier, sink)

	booking := pendingBooking()

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusConfirmed).Return(nil)
	notifier.On("SendConfirmation", mock.Anything, booking, "See you at 6pm!").Return(nil)
	sink.On("Record", booking.ID, "confirmation", "a@x.com", "").Return()

	updated, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusConfirmed, "See you at 6pm!")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	svc.Wait()
	notifier.AssertNumberOfCalls(t, "SendConfirmation", 1)
	notifier.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything)
	sink.AssertCalled(t, "Record", booking.ID, "confirmation", "a@x.com", "")
}

func TestTransition_PendingToCancelled_SendsCancellation(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusCancelled).Return(nil)
	notifier.On("SendCancellation", mock.Anything, booking, "").Return(nil)

	updated, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusCancelled, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)

	svc.Wait()
	notifier.AssertNumberOfCalls(t, "SendCancellation", 1)
}

func TestTransition_SameStatus_IsNoOp(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()
	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)

	updated, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusPending, "")
	require.NoError(t, err)
	assert.Equal(t, booking, updated)

	svc.Wait()
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_ReopenToPending_IsSilent(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()
	booking.Status = models.BookingStatusCancelled

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusPending).Return(nil)

	updated, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusPending, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, updated.Status)

	svc.Wait()
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_CancelledToConfirmed_SendsConfirmation(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()
	booking.Status = models.BookingStatusCancelled

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusConfirmed).Return(nil)
	notifier.On("SendConfirmation", mock.Anything, booking, "").Return(nil)

	_, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusConfirmed, "")
	require.NoError(t, err)

	svc.Wait()
	notifier.AssertNumberOfCalls(t, "SendConfirmation", 1)
}

func TestTransition_InvalidStatus_RejectedBeforeIO(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	_, err := svc.Transition(context.Background(), uuid.New(), "approved", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_NotFound(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	id := uuid.New()
	store.On("GetByID", mock.Anything, id).Return(nil, ErrBookingNotFound)

	_, err := svc.Transition(context.Background(), id, models.BookingStatusConfirmed, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestTransition_PersistenceFailure_NoNotification(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()
	writeErr := errors.New("connection reset")

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusConfirmed).Return(writeErr)

	_, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusConfirmed, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)

	svc.Wait()
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransition_NotificationFailure_StillSucceeds(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	sink := new(MockSink)
	svc := NewBookingLifecycleService(store, notifier, sink)

	booking := pendingBooking()

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, models.BookingStatusConfirmed).Return(nil)
	notifier.On("SendConfirmation", mock.Anything, booking, "").Return(errors.New("smtp unreachable"))
	sink.On("Record", booking.ID, "confirmation", "a@x.com", "smtp unreachable").Return()

	updated, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	svc.Wait()
	sink.AssertCalled(t, "Record", booking.ID, "confirmation", "a@x.com", "smtp unreachable")
}

func TestTransition_RoundTrip_TwoNotificationsTotal(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateStatus", mock.Anything, booking.ID, mock.Anything).Return(nil)
	notifier.On("SendConfirmation", mock.Anything, booking, "").Return(nil)
	notifier.On("SendCancellation", mock.Anything, booking, "").Return(nil)

	_, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusConfirmed, "")
	require.NoError(t, err)
	_, err = svc.Transition(context.Background(), booking.ID, models.BookingStatusCancelled, "")
	require.NoError(t, err)
	final, err := svc.Transition(context.Background(), booking.ID, models.BookingStatusPending, "")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, final.Status)

	svc.Wait()
	notifier.AssertNumberOfCalls(t, "SendConfirmation", 1)
	notifier.AssertNumberOfCalls(t, "SendCancellation", 1)
}

func TestUpdateNotes_NeverNotifies(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	svc := NewBookingLifecycleService(store, notifier, nil)

	booking := pendingBooking()

	store.On("GetByID", mock.Anything, booking.ID).Return(booking, nil)
	store.On("UpdateNotes", mock.Anything, booking.ID, "kam 10 min zu spät").Return(nil)

	updated, err := svc.UpdateNotes(context.Background(), booking.ID, "kam 10 min zu spät")
	require.NoError(t, err)
	assert.Equal(t, "kam 10 min zu spät", updated.AdminNotes)
	assert.Equal(t, models.BookingStatusPending, updated.Status)

	svc.Wait()
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendConfirmation", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "SendCancellation", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_SendsIntakePair_AndSurvivesEmailFailure(t *testing.T) {
	store := new(MockBookingStore)
	notifier := new(MockNotifier)
	sink := new(MockSink)
	svc := NewBookingLifecycleService(store, notifier, sink)

	booking := &models.Booking{
		Name:    "Lisa",
		Email:   "lisa@x.com",
		Service: "Gruppenkurse",
		People:  1,
	}

	store.On("Insert", mock.Anything, booking).Return(nil)
	notifier.On("SendIntakePair", mock.Anything, booking).Return(errors.New("rate limited"))
	sink.On("Record", mock.Anything, "intake", "lisa@x.com", "rate limited").Return()

	created, err := svc.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)

	svc.Wait()
	notifier.AssertNumberOfCalls(t, "SendIntakePair", 1)
}

func TestList_RejectsUnknownStatusFilter(t *testing.T) {
	store := new(MockBookingStore)
	svc := NewBookingLifecycleService(store, new(MockNotifier), nil)

	_, err := svc.List(context.Background(), "done")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStatus)
	store.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
