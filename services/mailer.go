// services/mailer.go
package services

import (
	"context"
	"fmt"
	"html"
	"os"

	"github.com/SalimLee/Salimlee-Gym/models"
	"github.com/SalimLee/Salimlee-Gym/utils"
	"github.com/resend/resend-go/v2"
)

const mailFooter = `<div style="padding: 20px; text-align: center; color: #71717a; font-size: 12px;">
Metzgerstrasse 5, 72764 Reutlingen<br>Salim Lee Boxing &amp; Fitness Gym</div>`

// ResendMailer sends the customer-facing booking emails through Resend,
// the provider the website uses. Admin-supplied text is HTML-escaped
// before it reaches a template.
type ResendMailer struct {
	client   *resend.Client
	from     string
	gymEmail string
}

func NewResendMailer() *ResendMailer {
	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "Salim Lee Gym <onboarding@resend.dev>"
	}
	gymEmail := os.Getenv("GYM_EMAIL")
	if gymEmail == "" {
		gymEmail = "info@salim-lee-gym.de"
	}
	return &ResendMailer{
		client:   resend.NewClient(os.Getenv("RESEND_API_KEY")),
		from:     from,
		gymEmail: gymEmail,
	}
}

// SendConfirmation tells the customer their request was accepted. The
// body always names service, party size and the requested date.
func (m *ResendMailer) SendConfirmation(ctx context.Context, booking *models.Booking, personalMessage string) error {
	body := fmt.Sprintf(`<h2 style="color: #22c55e;">Buchung bestätigt!</h2>
<p>Hallo <strong>%s</strong>,<br><br>
Großartige Neuigkeiten! Deine Buchungsanfrage wurde <strong>bestätigt</strong>. Wir freuen uns auf dich!</p>
<div style="border-left: 4px solid #22c55e; padding-left: 16px;">
<p><strong>Service:</strong> %s</p>
<p><strong>Personen:</strong> %d</p>
<p><strong>Termin:</strong> %s</p>
</div>
%s
<p>Bei Fragen erreichst du uns jederzeit unter <a href="mailto:%s">%s</a></p>
<p>Sportliche Grüße,<br><strong>Dein Salim Lee Team</strong></p>%s`,
		html.EscapeString(booking.Name),
		html.EscapeString(booking.Service),
		booking.People,
		utils.FormatGermanDate(booking.PreferredDate),
		personalMessageBlock(personalMessage),
		m.gymEmail, m.gymEmail,
		mailFooter,
	)

	return m.send(ctx, booking.Email, "Deine Buchung wurde bestätigt! - Salim Lee Gym", body)
}

// SendCancellation tells the customer the request cannot be honored and
// invites a new one.
func (m *ResendMailer) SendCancellation(ctx context.Context, booking *models.Booking, personalMessage string) error {
	body := fmt.Sprintf(`<p>Hallo <strong>%s</strong>,<br><br>
Leider müssen wir dir mitteilen, dass deine Buchungsanfrage für <strong>%s</strong> am <strong>%s</strong> leider nicht wahrgenommen werden kann.</p>
%s
<p>Gerne kannst du eine neue Anfrage stellen oder uns direkt kontaktieren, damit wir einen passenden Termin für dich finden.</p>
<p><a href="https://salim-lee-gym.de">Neue Anfrage stellen</a></p>
<p>Sportliche Grüße,<br><strong>Dein Salim Lee Team</strong></p>%s`,
		html.EscapeString(booking.Name),
		html.EscapeString(booking.Service),
		utils.FormatGermanDate(booking.PreferredDate),
		personalMessageBlock(personalMessage),
		mailFooter,
	)

	return m.send(ctx, booking.Email, "Deine Buchungsanfrage - Salim Lee Gym", body)
}

// SendIntakePair sends the two emails of the public booking form: the
// request summary to the gym owner and a receipt to the customer.
func (m *ResendMailer) SendIntakePair(ctx context.Context, booking *models.Booking) error {
	ownerBody := fmt.Sprintf(`<h1>Neue Buchungsanfrage</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
<p><strong>Telefon:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Personen:</strong> %d Person(en)</p>
<p><strong>Wunschtermin:</strong> %s</p>
%s%s`,
		html.EscapeString(booking.Name),
		html.EscapeString(booking.Email), html.EscapeString(booking.Email),
		html.EscapeString(orDash(booking.Phone)),
		html.EscapeString(booking.Service),
		booking.People,
		utils.FormatGermanDate(booking.PreferredDate),
		messageBlock("Nachricht", booking.Message),
		mailFooter,
	)

	subject := fmt.Sprintf("Neue Buchungsanfrage: %s von %s", booking.Service, booking.Name)
	if err := m.send(ctx, m.gymEmail, subject, ownerBody); err != nil {
		return fmt.Errorf("owner notification: %w", err)
	}

	customerBody := fmt.Sprintf(`<h2>Hallo %s!</h2>
<p>Vielen Dank für deine Buchungsanfrage! Wir haben sie erhalten und melden uns
<strong>innerhalb von 24 Stunden</strong> bei dir, um alles Weitere zu besprechen.</p>
<div style="border-left: 4px solid #f59e0b; padding-left: 16px;">
<p><strong>Service:</strong> %s</p>
<p><strong>Personen:</strong> %d</p>
<p><strong>Wunschtermin:</strong> %s</p>
</div>
<p>Sportliche Grüße,<br><strong>Dein Salim Lee Team</strong></p>%s`,
		html.EscapeString(booking.Name),
		html.EscapeString(booking.Service),
		booking.People,
		utils.FormatGermanDate(booking.PreferredDate),
		mailFooter,
	)

	if err := m.send(ctx, booking.Email, "Deine Buchungsanfrage bei Salim Lee Gym", customerBody); err != nil {
		return fmt.Errorf("customer receipt: %w", err)
	}
	return nil
}

func (m *ResendMailer) send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    fmt.Sprintf(`<!DOCTYPE html><html><head><meta charset="utf-8"></head><body style="font-family: Arial, sans-serif;">%s</body></html>`, body),
	}
	_, err := m.client.Emails.SendWithContext(ctx, params)
	return err
}

func personalMessageBlock(message string) string {
	return messageBlock("Nachricht vom Team", message)
}

func messageBlock(title, message string) string {
	if message == "" {
		return ""
	}
	return fmt.Sprintf(`<div style="border-left: 4px solid #f59e0b; padding-left: 16px;">
<h3 style="color: #f59e0b;">%s</h3>
<p style="white-space: pre-line;">%s</p>
</div>`, title, html.EscapeString(message))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
