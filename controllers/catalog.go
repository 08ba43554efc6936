// controllers/catalog.go
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

// CreateServiceInput defines the expected JSON structure for a gym service
type CreateServiceInput struct {
	Title    string   `json:"title" binding:"required"`
	Subtitle string   `json:"subtitle"`
	Price    string   `json:"price" binding:"required"`
	Features []string `json:"features"`
	Icon     string   `json:"icon"`
	Order    int      `json:"order"`
}

type UpdateServiceInput struct {
	Title    *string   `json:"title"`
	Subtitle *string   `json:"subtitle"`
	Price    *string   `json:"price"`
	Features *[]string `json:"features"`
	Icon     *string   `json:"icon"`
	Order    *int      `json:"order"`
	Active   *bool     `json:"active"`
}

// CreatePriceItemInput defines the expected JSON structure for a price row
type CreatePriceItemInput struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Discount string `json:"discount"`
	Category string `json:"category" binding:"required,oneof=personal group kids"`
	Order    int    `json:"order"`
}

type UpdatePriceItemInput struct {
	Name     *string `json:"name"`
	Price    *string `json:"price"`
	Discount *string `json:"discount"`
	Category *string `json:"category" binding:"omitempty,oneof=personal group kids"`
	Order    *int    `json:"order"`
	Active   *bool   `json:"active"`
}

// GetPublicCatalog returns active services and prices for the website,
// in display order. No auth.
func GetPublicCatalog(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Where("active = ?", true).
		Order("sort_order ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	var prices []models.PriceItem
	if err := config.DB.Where("active = ?", true).
		Order("sort_order ASC").Find(&prices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve prices")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"services": services,
		"prices":   prices,
	})
}

// CreateService creates a gym service entry
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Price:    input.Price,
		Features: input.Features,
		Icon:     input.Icon,
		Order:    input.Order,
		Active:   true,
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services including inactive ones (admin view)
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("sort_order ASC").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// UpdateService updates an existing service
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Title != nil {
		service.Title = *input.Title
	}
	if input.Subtitle != nil {
		service.Subtitle = *input.Subtitle
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Features != nil {
		service.Features = *input.Features
	}
	if input.Icon != nil {
		service.Icon = *input.Icon
	}
	if input.Order != nil {
		service.Order = *input.Order
	}
	if input.Active != nil {
		service.Active = *input.Active
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService removes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Where("id = ?", serviceUUID).Delete(&models.Service{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// CreatePriceItem creates a price list entry
func CreatePriceItem(c *gin.Context) {
	var input CreatePriceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	price := models.PriceItem{
		Name:     input.Name,
		Price:    input.Price,
		Discount: input.Discount,
		Category: input.Category,
		Order:    input.Order,
		Active:   true,
	}

	if err := config.DB.Create(&price).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create price item")
		return
	}

	c.JSON(http.StatusCreated, price)
}

// GetPriceItems retrieves all price items (admin view)
func GetPriceItems(c *gin.Context) {
	var prices []models.PriceItem
	if err := config.DB.Order("sort_order ASC").Find(&prices).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve price items")
		return
	}

	c.JSON(http.StatusOK, prices)
}

// UpdatePriceItem updates an existing price item
func UpdatePriceItem(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price item ID format")
		return
	}

	var input UpdatePriceItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var price models.PriceItem
	if err := config.DB.First(&price, "id = ?", priceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Price item not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		price.Name = *input.Name
	}
	if input.Price != nil {
		price.Price = *input.Price
	}
	if input.Discount != nil {
		price.Discount = *input.Discount
	}
	if input.Category != nil {
		price.Category = *input.Category
	}
	if input.Order != nil {
		price.Order = *input.Order
	}
	if input.Active != nil {
		price.Active = *input.Active
	}

	if err := config.DB.Save(&price).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update price item")
		return
	}

	c.JSON(http.StatusOK, price)
}

// DeletePriceItem removes a price item
func DeletePriceItem(c *gin.Context) {
	priceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid price item ID format")
		return
	}

	result := config.DB.Where("id = ?", priceUUID).Delete(&models.PriceItem{})

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete price item")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Price item not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Price item deleted successfully"})
}
