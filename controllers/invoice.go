// controllers/invoice.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	MemberID    uuid.UUID  `json:"member_id" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	Notes       string     `json:"notes"`
}

// UpdateInvoiceInput defines the expected JSON structure for updating an invoice
type UpdateInvoiceInput struct {
	Description *string    `json:"description"`
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	DueDate     *time.Time `json:"due_date"`
	Notes       *string    `json:"notes"`
}

// nextInvoiceNumber builds a RG-YYYY-NNNN number from the count of
// invoices issued this year.
func nextInvoiceNumber(db *gorm.DB) (string, error) {
	year := time.Now().Year()
	startOfYear := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	var count int64
	if err := db.Model(&models.Invoice{}).
		Where("created_at >= ?", startOfYear).
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("RG-%d-%04d", year, count+1), nil
}

// CreateInvoice creates a new invoice for a member
func CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
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

	invoiceNumber, err := nextInvoiceNumber(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate invoice number")
		return
	}

	// Default due date: 14 days from now
	dueDate := time.Now().AddDate(0, 0, 14)
	if input.DueDate != nil {
		dueDate = *input.DueDate
	}

	invoice := models.Invoice{
		MemberID:      input.MemberID,
		InvoiceNumber: invoiceNumber,
		Description:   input.Description,
		Amount:        input.Amount,
		Status:        models.InvoiceStatusOpen,
		DueDate:       dueDate,
		Notes:         input.Notes,
	}

	if err := config.DB.Create(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves invoices, optionally filtered by member or status
func GetInvoices(c *gin.Context) {
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
		if !models.InvoiceStatus(status).IsValid() {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid status filter")
			return
		}
		query = query.Where("status = ?", status)
	}

	var invoices []models.Invoice
	if err := query.Find(&invoices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve invoices")
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// GetInvoice retrieves a specific invoice by ID
func GetInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoice updates the editable fields of an invoice
func UpdateInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Description != nil {
		invoice.Description = *input.Description
	}
	if input.Amount != nil {
		invoice.Amount = *input.Amount
	}
	if input.DueDate != nil {
		invoice.DueDate = *input.DueDate
	}
	if input.Notes != nil {
		invoice.Notes = *input.Notes
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// SetInvoiceStatus marks an invoice paid, overdue or cancelled. Marking
// paid stamps today as the paid date; any other status clears it.
func SetInvoiceStatus(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input struct {
		Status models.InvoiceStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Status.IsValid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Status must be open, paid, overdue or cancelled")
		return
	}

	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", invoiceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	invoice.Status = input.Status
	if input.Status == models.InvoiceStatusPaid {
		now := time.Now()
		invoice.PaidDate = &now
	} else {
		invoice.PaidDate = nil
	}

	if err := config.DB.Save(&invoice).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice removes an invoice
func DeleteInvoice(c *gin.Context) {
	invoiceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	result := config.DB.Where("id = ?", invoiceUUID).Delete(&models.Invoice{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}
