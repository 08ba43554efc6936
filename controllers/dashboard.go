package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SalimLee/Salimlee-Gym/config"
	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"

	"github.com/gin-gonic/gin"
)

type ExpiringSubscription struct {
	ID         string  `json:"id"`
	MemberName string  `json:"memberName"`
	Name       string  `json:"name"`
	DaysLeft   int     `json:"daysLeft"`
	Price      float64 `json:"price"`
}

type LowUnitSubscription struct {
	ID             string `json:"id"`
	MemberName     string `json:"memberName"`
	Name           string `json:"name"`
	RemainingUnits int    `json:"remainingUnits"`
}

type RecentBooking struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Status  string `json:"status"`
	Created string `json:"created"` // e.g. "Today", "Yesterday", "3 days ago"
}

// GetDashboardOverview composes the admin overview: headline counters
// plus the attention lists (expiring subscriptions, low punch cards,
// overdue invoices, latest bookings).
func GetDashboardOverview(c *gin.Context) {
	now := time.Now()

	// Active members
	var activeMembers int64
	config.DB.Model(&models.Member{}).Where("active = ?", true).Count(&activeMembers)

	// Active subscriptions
	var activeSubscriptions int64
	config.DB.Model(&models.Subscription{}).
		Where("status = ?", models.SubscriptionStatusActive).Count(&activeSubscriptions)

	// Pending bookings
	var pendingBookings int64
	config.DB.Model(&models.Booking{}).
		Where("status = ?", models.BookingStatusPending).Count(&pendingBookings)

	// Open invoices (open + overdue) and their total amount
	var openInvoices int64
	config.DB.Model(&models.Invoice{}).
		Where("status IN ?", []models.InvoiceStatus{models.InvoiceStatusOpen, models.InvoiceStatusOverdue}).
		Count(&openInvoices)

	var openInvoiceAmount float64
	config.DB.Model(&models.Invoice{}).
		Where("status IN ?", []models.InvoiceStatus{models.InvoiceStatusOpen, models.InvoiceStatusOverdue}).
		Select("COALESCE(SUM(amount), 0)").Scan(&openInvoiceAmount)

	// Revenue paid this month
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	var paidThisMonth float64
	config.DB.Model(&models.Invoice{}).
		Where("status = ? AND paid_date >= ?", models.InvoiceStatusPaid, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&paidThisMonth)

	// Subscriptions expiring within 30 days
	in30Days := now.AddDate(0, 0, 30)
	var expiringRows []models.Subscription
	config.DB.Where("status = ? AND end_date IS NOT NULL AND end_date >= ? AND end_date <= ?",
		models.SubscriptionStatusActive, now, in30Days).
		Order("end_date ASC").Find(&expiringRows)

	expiringSoon := make([]ExpiringSubscription, 0, len(expiringRows))
	for _, sub := range expiringRows {
		expiringSoon = append(expiringSoon, ExpiringSubscription{
			ID:         sub.ID.String(),
			MemberName: memberName(sub.MemberID.String()),
			Name:       sub.Name,
			DaysLeft:   utils.DaysBetween(now, *sub.EndDate),
			Price:      sub.Price,
		})
	}

	// Punch cards with 2 or fewer remaining units
	var lowUnitRows []models.Subscription
	config.DB.Where("status = ? AND type = ? AND remaining_units IS NOT NULL AND remaining_units <= ?",
		models.SubscriptionStatusActive, "punch_card", 2).
		Find(&lowUnitRows)

	lowUnits := make([]LowUnitSubscription, 0, len(lowUnitRows))
	for _, sub := range lowUnitRows {
		lowUnits = append(lowUnits, LowUnitSubscription{
			ID:             sub.ID.String(),
			MemberName:     memberName(sub.MemberID.String()),
			Name:           sub.Name,
			RemainingUnits: *sub.RemainingUnits,
		})
	}

	// Overdue invoices
	var overdueInvoices []models.Invoice
	config.DB.Where("status = ?", models.InvoiceStatusOverdue).
		Order("due_date ASC").Find(&overdueInvoices)

	// Five most recent bookings
	var latest []models.Booking
	config.DB.Order("created_at DESC").Limit(5).Find(&latest)

	recentBookings := make([]RecentBooking, 0, len(latest))
	for _, b := range latest {
		recentBookings = append(recentBookings, RecentBooking{
			ID:      b.ID.String(),
			Name:    b.Name,
			Service: b.Service,
			Status:  string(b.Status),
			Created: relativeDay(b.CreatedAt),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"activeMembers":       activeMembers,
		"activeSubscriptions": activeSubscriptions,
		"pendingBookings":     pendingBookings,
		"openInvoices": gin.H{
			"count":  openInvoices,
			"amount": openInvoiceAmount,
		},
		"paidThisMonth":   paidThisMonth,
		"expiringSoon":    expiringSoon,
		"lowUnits":        lowUnits,
		"overdueInvoices": overdueInvoices,
		"recentBookings":  recentBookings,
	})
}

func memberName(memberID string) string {
	var member models.Member
	if err := config.DB.Select("name").First(&member, "id = ?", memberID).Error; err != nil {
		return "Unbekannt"
	}
	return member.Name
}

func relativeDay(t time.Time) string {
	switch days := utils.DaysBetween(t, time.Now()); days {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
