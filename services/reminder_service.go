// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

const (
	expiryReminderText  = "Hallo %s, deine Mitgliedschaft \"%s\" läuft am %s ab. Melde dich bei uns, wenn du verlängern möchtest! - Salim Lee Gym"
	overdueReminderText = "Hallo %s, die Rechnung %s über %.2f€ ist noch offen. Bitte begleiche sie zeitnah. Danke! - Salim Lee Gym"
)

// ReminderService sends membership expiry and overdue invoice reminders
// to members via Twilio.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the daily reminder pass every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	s.sendExpiryReminders()
	s.sendOverdueReminders()

	log.Println("Daily reminder processing completed")
}

// sendExpiryReminders notifies members whose active subscription ends in
// exactly 7 days.
func (s *ReminderService) sendExpiryReminders() {
	windowStart := utils.BeginningOfDay(time.Now().AddDate(0, 0, 7))
	windowEnd := windowStart.AddDate(0, 0, 1)

	var subscriptions []models.Subscription
	if err := s.db.
		Where("status = ? AND end_date >= ? AND end_date < ?",
			models.SubscriptionStatusActive, windowStart, windowEnd).
		Find(&subscriptions).Error; err != nil {
		log.Printf("Failed to fetch expiring subscriptions: %v", err)
		return
	}

	for _, sub := range subscriptions {
		var member models.Member
		if err := s.db.First(&member, "id = ?", sub.MemberID).Error; err != nil {
			log.Printf("Subscription %s: member lookup failed: %v", sub.ID, err)
			continue
		}
		message := fmt.Sprintf(expiryReminderText, member.Name, sub.Name, sub.EndDate.Format("02.01.2006"))
		s.deliver(member, "expiry", message)
	}
}

// sendOverdueReminders notifies members with invoices past their due date
// that are still open, and flips those invoices to overdue.
func (s *ReminderService) sendOverdueReminders() {
	var invoices []models.Invoice
	if err := s.db.
		Where("status = ? AND due_date < ?", models.InvoiceStatusOpen, utils.BeginningOfDay(time.Now())).
		Find(&invoices).Error; err != nil {
		log.Printf("Failed to fetch overdue invoices: %v", err)
		return
	}

	for _, invoice := range invoices {
		if err := s.db.Model(&invoice).Update("status", models.InvoiceStatusOverdue).Error; err != nil {
			log.Printf("Invoice %s: failed to mark overdue: %v", invoice.ID, err)
			continue
		}

		var member models.Member
		if err := s.db.First(&member, "id = ?", invoice.MemberID).Error; err != nil {
			log.Printf("Invoice %s: member lookup failed: %v", invoice.ID, err)
			continue
		}
		message := fmt.Sprintf(overdueReminderText, member.Name, invoice.InvoiceNumber, invoice.Amount)
		s.deliver(member, "overdue", message)
	}
}

func (s *ReminderService) deliver(member models.Member, reminderType, message string) {
	if member.Phone == "" {
		log.Printf("Member %s has no phone, skipping %s reminder", member.ID, reminderType)
		return
	}

	// Determine channel (WhatsApp if available, else SMS)
	channel := "sms"
	to := member.Phone

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	if strings.HasPrefix(member.Phone, "+") {
		to = "whatsapp:" + member.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send message to %s: %v", member.Phone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", member.Phone, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", member.Phone)
	}

	// Log the reminder
	reminderLog := models.NotificationLog{
		MemberID:     &member.ID,
		Type:         reminderType,
		Recipient:    member.Phone,
		Channel:      channel,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for member %s: %v", member.ID, err)
	}
}
