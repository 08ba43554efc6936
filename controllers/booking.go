// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/services"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingController wraps the lifecycle service for the HTTP layer. The
// service is injected so tests can run it against fakes.
type BookingController struct {
	Lifecycle *services.BookingLifecycleService
}

func NewBookingController(lifecycle *services.BookingLifecycleService) *BookingController {
	return &BookingController{Lifecycle: lifecycle}
}

// CreateBookingInput is the public booking form payload
type CreateBookingInput struct {
	Name          string     `json:"name" binding:"required"`
	Email         string     `json:"email" binding:"required,email"`
	Phone         string     `json:"phone"`
	Service       string     `json:"service" binding:"required"`
	People        int        `json:"people" binding:"omitempty,min=1"`
	PreferredDate *time.Time `json:"preferred_date"`
	Message       string     `json:"message"`
}

type UpdateStatusInput struct {
	Status          models.BookingStatus `json:"status" binding:"required"`
	PersonalMessage string               `json:"personal_message"`
}

type UpdateNotesInput struct {
	AdminNotes string `json:"admin_notes"`
}

// CreateBooking handles the public booking form. No auth; every request
// starts life as a pending booking.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	booking := models.Booking{
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Service:       input.Service,
		People:        input.People,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
	}

	created, err := bc.Lifecycle.Create(c.Request.Context(), &booking)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetBookings lists bookings newest first, optionally filtered with
// ?status=pending|confirmed|cancelled, plus per-status counts for the
// dashboard filter chips.
func (bc *BookingController) GetBookings(c *gin.Context) {
	status := models.BookingStatus(c.Query("status"))

	bookings, err := bc.Lifecycle.List(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	counts := gin.H{"pending": 0, "confirmed": 0, "cancelled": 0}
	if status == "" {
		for _, b := range bookings {
			switch b.Status {
			case models.BookingStatusPending:
				counts["pending"] = counts["pending"].(int) + 1
			case models.BookingStatusConfirmed:
				counts["confirmed"] = counts["confirmed"].(int) + 1
			case models.BookingStatusCancelled:
				counts["cancelled"] = counts["cancelled"].(int) + 1
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    len(bookings),
		"counts":   counts,
	})
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	booking, err := bc.Lifecycle.Get(c.Request.Context(), bookingUUID)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus runs a lifecycle transition. The response reflects
// the persisted status; the customer email goes out in the background and
// its failure never turns this call into an error.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Lifecycle.Transition(c.Request.Context(), bookingUUID, input.Status, input.PersonalMessage)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondWithError(c, http.StatusBadRequest, "Status must be pending, confirmed or cancelled")
		case errors.Is(err, services.ErrBookingNotFound):
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		default:
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking status")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingNotes changes the internal notes only
func (bc *BookingController) UpdateBookingNotes(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateNotesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	booking, err := bc.Lifecycle.UpdateNotes(c.Request.Context(), bookingUUID, input.AdminNotes)
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking notes")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
