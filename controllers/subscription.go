// controllers/subscription.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSubscriptionInput defines the expected JSON structure
type CreateSubscriptionInput struct {
	MemberID   uuid.UUID  `json:"member_id" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=monthly punch_card trial"`
	StartDate  time.Time  `json:"start_date" binding:"required"`
	EndDate    *time.Time `json:"end_date"`
	TotalUnits *int       `json:"total_units" binding:"omitempty,min=1"`
	Price      float64    `json:"price" binding:"min=0"`
	Notes      string     `json:"notes"`
}

type UpdateSubscriptionStatusInput struct {
	Status models.SubscriptionStatus `json:"status" binding:"required"`
}

type UpdateSubscriptionUnitsInput struct {
	RemainingUnits int `json:"remaining_units" binding:"min=0"`
}

// CreateSubscription creates a subscription for a member. Punch cards
// start with remaining units equal to total units.
func CreateSubscription(c *gin.Context) {
	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Validate member exists
	var member models.Member
	if err := config.DB.First(&member, "id = ?", input.MemberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusBadRequest, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Type == "punch_card" && input.TotalUnits == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Punch card requires total_units")
		return
	}

	subscription := models.Subscription{
		MemberID:   input.MemberID,
		Name:       input.Name,
		Type:       input.Type,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		TotalUnits: input.TotalUnits,
		Price:      input.Price,
		Status:     models.SubscriptionStatusActive,
		Notes:      input.Notes,
	}

	if input.TotalUnits != nil {
		remaining := *input.TotalUnits
		subscription.RemainingUnits = &remaining
	}

	if err := config.DB.Create(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscriptions retrieves subscriptions, optionally filtered by member
// or status
func GetSubscriptions(c *gin.Context) {
	query := config.DB.Order("created_at DESC")

	if memberID := c.Query("member_id"); memberID != "" {
		memberUUID, err := uuid.Parse(memberID)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
			return
		}
		query = query.Where("member_id = ?", memberUUID)
	}
	if status := c.Query("status"); status != "" {
		if !models.SubscriptionStatus(status).IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	var subscriptions []models.Subscription
	if err := query.Find(&subscriptions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve subscriptions")
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// UpdateSubscriptionStatus moves a subscription between
// active/paused/expired/cancelled
func UpdateSubscriptionStatus(c *gin.Context) {
	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var input UpdateSubscriptionStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be active, expired, cancelled or paused")
		return
	}

	var subscription models.Subscription
	if err := config.DB.First(&subscription, "id = ?", subscriptionUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	subscription.Status = input.Status
	if err := config.DB.Save(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// UpdateSubscriptionUnits sets the remaining units of a punch card
func UpdateSubscriptionUnits(c *gin.Context) {
	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	var input UpdateSubscriptionUnitsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var subscription models.Subscription
	if err := config.DB.First(&subscription, "id = ?", subscriptionUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if subscription.Type != "punch_card" {
		utils.RespondWithError(c, http.StatusBadRequest, "Only punch cards track units")
		return
	}
	if subscription.TotalUnits != nil && input.RemainingUnits > *subscription.TotalUnits {
		utils.RespondWithError(c, http.StatusBadRequest, "Remaining units cannot exceed total units")
		return
	}

	remaining := input.RemainingUnits
	subscription.RemainingUnits = &remaining
	if err := config.DB.Save(&subscription).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update subscription")
		return
	}

	c.JSON(http.StatusOK, subscription)
}

// DeleteSubscription removes a subscription
func DeleteSubscription(c *gin.Context) {
	subscriptionUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid subscription ID format")
		return
	}

	result := config.DB.Where("id = ?", subscriptionUUID).Delete(&models.Subscription{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete subscription")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Subscription not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription deleted successfully"})
}
