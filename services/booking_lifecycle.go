// services/booking_lifecycle.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("invalid booking status")
)

// BookingStore is the persistence contract of the lifecycle service. The
// store is the single source of truth; the service keeps no cache.
type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.BookingStatus) error
	UpdateNotes(ctx context.Context, id uuid.UUID, notes string) error
	List(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
}

// BookingNotifier sends customer-facing emails for a booking. Delivery is
// best effort; errors are reported to the caller so they can be logged,
// they never influence the booking itself.
type BookingNotifier interface {
	SendConfirmation(ctx context.Context, booking *models.Booking, personalMessage string) error
	SendCancellation(ctx context.Context, booking *models.Booking, personalMessage string) error
	SendIntakePair(ctx context.Context, booking *models.Booking) error
}

// NotificationSink records the outcome of a dispatched notification for
// operator follow-up.
type NotificationSink interface {
	Record(bookingID uuid.UUID, notificationType, recipient, errorMessage string)
}

// BookingLifecycleService owns the booking status state machine.
//
// Allowed transitions: every status is reachable from every other one, so
// an admin can always correct a mistake. Emails fire only when the status
// actually changes to confirmed or cancelled; moving back to pending is a
// silent reopen.
type BookingLifecycleService struct {
	store    BookingStore
	notifier BookingNotifier
	sink     NotificationSink

	wg sync.WaitGroup
}

func NewBookingLifecycleService(store BookingStore, notifier BookingNotifier, sink NotificationSink) *BookingLifecycleService {
	return &BookingLifecycleService{
		store:    store,
		notifier: notifier,
		sink:     sink,
	}
}

// Create inserts a new pending booking from the public form and sends the
// intake email pair (owner notification + customer receipt) in the
// background. The booking is created even if both emails fail.
func (s *BookingLifecycleService) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.Status = models.BookingStatusPending
	if err := s.store.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	log.Printf("[BOOKING] created %s (%s, %d Person(en))", booking.ID, booking.Service, booking.People)

	s.dispatch(context.WithoutCancel(ctx), booking, "intake", func(ctx context.Context) error {
		return s.notifier.SendIntakePair(ctx, booking)
	})

	return booking, nil
}

// Transition moves a booking to targetStatus.
//
// Requesting the current status is an idempotent no-op: no write, no
// email. A failed write aborts the operation before any email is
// attempted. Once the new status is persisted the transition has
// succeeded; the email for confirmed/cancelled targets is dispatched in a
// detached goroutine and its failure is only logged.
func (s *BookingLifecycleService) Transition(ctx context.Context, id uuid.UUID, targetStatus models.BookingStatus, personalMessage string) (*models.Booking, error) {
	if !targetStatus.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, targetStatus)
	}

	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == targetStatus {
		return booking, nil
	}

	if err := s.store.UpdateStatus(ctx, id, targetStatus); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	from := booking.Status
	booking.Status = targetStatus

	log.Printf("[BOOKING] %s: %s -> %s", id, from, targetStatus)

	switch targetStatus {
	case models.BookingStatusConfirmed:
		s.dispatch(context.WithoutCancel(ctx), booking, "confirmation", func(ctx context.Context) error {
			return s.notifier.SendConfirmation(ctx, booking, personalMessage)
		})
	case models.BookingStatusCancelled:
		s.dispatch(context.WithoutCancel(ctx), booking, "cancellation", func(ctx context.Context) error {
			return s.notifier.SendCancellation(ctx, booking, personalMessage)
		})
	}

	return booking, nil
}

// UpdateNotes changes the internal admin notes. Notes never reach the
// customer and never trigger an email.
func (s *BookingLifecycleService) UpdateNotes(ctx context.Context, id uuid.UUID, notes string) (*models.Booking, error) {
	booking, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateNotes(ctx, id, notes); err != nil {
		return nil, fmt.Errorf("update booking notes: %w", err)
	}

	booking.AdminNotes = notes
	return booking, nil
}

func (s *BookingLifecycleService) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return s.store.GetByID(ctx, id)
}

// List returns bookings newest first, optionally filtered by status
// (empty status means all).
func (s *BookingLifecycleService) List(ctx context.Context, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.store.List(ctx, status)
}

// dispatch runs send in its own goroutine so the HTTP response never waits
// on the email provider. Outcomes land in the notification sink.
func (s *BookingLifecycleService) dispatch(ctx context.Context, booking *models.Booking, notificationType string, send func(context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := send(ctx); err != nil {
			log.Printf("[NOTIFY] %s email for booking %s failed: %v", notificationType, booking.ID, err)
			if s.sink != nil {
				s.sink.Record(booking.ID, notificationType, booking.Email, err.Error())
			}
			return
		}
		if s.sink != nil {
			s.sink.Record(booking.ID, notificationType, booking.Email, "")
		}
	}()
}

// Wait blocks until all in-flight notifications have finished. Called on
// shutdown so a quick exit does not drop queued emails.
func (s *BookingLifecycleService) Wait() {
	s.wg.Wait()
}
