package controllers

import (
	"errors"
	"net/http"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMemberInput defines the expected JSON structure for creating a member
type CreateMemberInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateMemberInput defines the expected JSON structure for updating a member
type UpdateMemberInput struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Notes  *string `json:"notes"`
	Active *bool   `json:"active"`
}

// CreateMember creates a new gym member
func CreateMember(c *gin.Context) {
	var input CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	// Check if email already exists
	var existingMember models.Member
	if err := config.DB.Where("email = ?", input.Email).
		First(&existingMember).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Member with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	member := models.Member{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		Notes:  input.Notes,
		Active: true,
	}

	if err := config.DB.Create(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMembers retrieves all members, newest first
func GetMembers(c *gin.Context) {
	var members []models.Member
	if err := config.DB.Order("created_at DESC").Find(&members).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve members")
		return
	}

	c.JSON(http.StatusOK, members)
}

// GetMember retrieves a specific member with subscriptions and invoices
func GetMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var member models.Member
	if err := config.DB.Preload("Subscriptions").Preload("Invoices").
		First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, member)
}

// UpdateMember updates an existing member
func UpdateMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	var input UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var member models.Member
	if err := config.DB.First(&member, "id = ?", memberUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	// Update fields if provided
	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		// Check if email is being changed to another existing member
		if member.Email != *input.Email {
			var existingMember models.Member
			if err := config.DB.Where("email = ?", *input.Email).
				First(&existingMember).Error; err == nil {
				utils.RespondWithError(c, http.StatusConflict, "Another member with this email already exists")
				return
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
				return
			}
		}
		member.Email = *input.Email
	}
	if input.Phone != nil {
		if *input.Phone != "" && !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		member.Phone = *input.Phone
	}
	if input.Notes != nil {
		member.Notes = *input.Notes
	}
	if input.Active != nil {
		member.Active = *input.Active
	}

	if err := config.DB.Save(&member).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember soft deletes a member
func DeleteMember(c *gin.Context) {
	memberUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid member ID format")
		return
	}

	result := config.DB.Where("id = ?", memberUUID).Delete(&models.Member{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete member")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
