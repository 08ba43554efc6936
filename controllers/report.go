// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
)

// ReportController handles all reporting functions
type ReportController struct{}

// AnalyticsSummary represents the Analytics data
type AnalyticsSummary struct {
	CurrentMonthRevenue float64        `json:"currentMonthRevenue"`
	MonthGrowth         float64        `json:"monthGrowth"`
	RevenueByMonth      []MonthRevenue `json:"revenueByMonth"`
	BookingStats        BookingStats   `json:"bookingStats"`
	QuickStats          QuickStats     `json:"quickStats"`
}

type MonthRevenue struct {
	Month   string  `json:"month"` // "2024-05"
	Revenue float64 `json:"revenue"`
}

type BookingStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

type QuickStats struct {
	TotalMembers        int64   `json:"totalMembers"`
	TotalInvoices       int64   `json:"totalInvoices"`
	ActiveSubscriptions int64   `json:"activeSubscriptions"`
	AvgInvoiceAmount    float64 `json:"avgInvoiceAmount"`
}

// GetReportAnalytics returns revenue trend and booking statistics
func (rc *ReportController) GetReportAnalytics(c *gin.Context) {
	now := time.Now()
	currentYear, currentMonth, _ := now.Date()
	loc := now.Location()

	firstOfMonth := time.Date(currentYear, currentMonth, 1, 0, 0, 0, 0, loc)

	currentMonthRevenue, err := rc.getPaidRevenue(firstOfMonth, firstOfMonth.AddDate(0, 1, 0))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	lastMonthRevenue, err := rc.getPaidRevenue(firstOfMonth.AddDate(0, -1, 0), firstOfMonth)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get monthly revenue")
		return
	}

	monthGrowth := 0.0
	if lastMonthRevenue > 0 {
		monthGrowth = (currentMonthRevenue - lastMonthRevenue) / lastMonthRevenue * 100
	}

	// Last 6 months of paid revenue
	revenueByMonth := make([]MonthRevenue, 0, 6)
	for i := 5; i >= 0; i-- {
		start := firstOfMonth.AddDate(0, -i, 0)
		revenue, err := rc.getPaidRevenue(start, start.AddDate(0, 1, 0))
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to get revenue trend")
			return
		}
		revenueByMonth = append(revenueByMonth, MonthRevenue{
			Month:   start.Format("2006-01"),
			Revenue: revenue,
		})
	}

	var stats BookingStats
	config.DB.Model(&models.Booking{}).Count(&stats.Total)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusPending).Count(&stats.Pending)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusConfirmed).Count(&stats.Confirmed)
	config.DB.Model(&models.Booking{}).Where("status = ?", models.BookingStatusCancelled).Count(&stats.Cancelled)

	var quick QuickStats
	config.DB.Model(&models.Member{}).Count(&quick.TotalMembers)
	config.DB.Model(&models.Invoice{}).Count(&quick.TotalInvoices)
	config.DB.Model(&models.Subscription{}).
		Where("status = ?", models.SubscriptionStatusActive).Count(&quick.ActiveSubscriptions)
	config.DB.Model(&models.Invoice{}).
		Select("COALESCE(AVG(amount), 0)").Scan(&quick.AvgInvoiceAmount)

	c.JSON(http.StatusOK, AnalyticsSummary{
		CurrentMonthRevenue: currentMonthRevenue,
		MonthGrowth:         monthGrowth,
		RevenueByMonth:      revenueByMonth,
		BookingStats:        stats,
		QuickStats:          quick,
	})
}

func (rc *ReportController) getPaidRevenue(start, end time.Time) (float64, error) {
	var revenue float64
	err := config.DB.Model(&models.Invoice{}).
		Where("status = ? AND paid_date >= ? AND paid_date < ?", models.InvoiceStatusPaid, start, end).
		Select("COALESCE(SUM(amount), 0)").Scan(&revenue).Error
	return revenue, err
}
