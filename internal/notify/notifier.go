package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const dispatchTimeout = 10 * time.Second

// Notifier fans a record summary out to mail and Discord after a successful
// write. Both sinks are best effort: failures are logged and dropped, the
// persisted row is the system of record.
type Notifier struct {
	Mailer  *Mailer
	Discord *DiscordClient
	MailTo  string
	Logger  zerolog.Logger
}

func NewNotifier(mailer *Mailer, discord *DiscordClient, mailTo string, logger zerolog.Logger) *Notifier {
	return &Notifier{Mailer: mailer, Discord: discord, MailTo: mailTo, Logger: logger}
}

// DonationEvent is the notification view of a persisted donation.
type DonationEvent struct {
	Amount        decimal.Decimal
	PaymentMethod string
	DonationType  string
	Project       string
	Message       string
	DonorName     string
	DonorEmail    string
	Anonymous     bool
	TransactionID string
}

// ContactEvent is the notification view of a contact submission.
type ContactEvent struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// DonationReceived dispatches the donation notifications. Call it from a
// goroutine; it never returns an error to the request path.
func (n *Notifier) DonationReceived(ev DonationEvent) {
	donorName := ev.DonorName
	donorEmail := ev.DonorEmail
	if ev.Anonymous {
		donorName = "Anonymous"
		donorEmail = ""
	}

	subject := fmt.Sprintf("New donation: %s via %s", ev.Amount.StringFixed(2), ev.PaymentMethod)
	body := fmt.Sprintf("Donation received.\n\nAmount: %s\nMethod: %s\nType: %s\nTransaction: %s\n",
		ev.Amount.StringFixed(2), ev.PaymentMethod, ev.DonationType, ev.TransactionID)
	if ev.Project != "" {
		body += fmt.Sprintf("Project: %s\n", ev.Project)
	}
	if !ev.Anonymous {
		body += fmt.Sprintf("Donor: %s <%s>\n", donorName, donorEmail)
	} else {
		body += "Donor: Anonymous\n"
	}
	if ev.Message != "" {
		body += fmt.Sprintf("Message: %s\n", ev.Message)
	}

	fields := []DiscordEmbedField{
		{Name: "Amount", Value: ev.Amount.StringFixed(2), Inline: true},
		{Name: "Method", Value: ev.PaymentMethod, Inline: true},
		{Name: "Type", Value: ev.DonationType, Inline: true},
		{Name: "Donor", Value: donorName, Inline: true},
	}
	if ev.Project != "" {
		fields = append(fields, DiscordEmbedField{Name: "Project", Value: ev.Project, Inline: true})
	}

	n.dispatch(subject, body, DiscordMessage{
		Embeds: []DiscordEmbed{{
			Title:     "New Donation",
			Color:     0x2ecc71,
			Fields:    fields,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// ContactReceived dispatches the contact-form notifications.
func (n *Notifier) ContactReceived(ev ContactEvent) {
	subject := "New contact message"
	if ev.Subject != "" {
		subject = "New contact message: " + ev.Subject
	}
	body := fmt.Sprintf("Contact form submission.\n\nFrom: %s <%s>\nSubject: %s\n\n%s\n",
		ev.Name, ev.Email, ev.Subject, ev.Message)

	n.dispatch(subject, body, DiscordMessage{
		Embeds: []DiscordEmbed{{
			Title:       "New Contact Message",
			Description: ev.Message,
			Color:       0x3498db,
			Fields: []DiscordEmbedField{
				{Name: "From", Value: ev.Name, Inline: true},
				{Name: "Email", Value: ev.Email, Inline: true},
				{Name: "Subject", Value: ev.Subject, Inline: true},
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// NewsletterSubscribed dispatches the subscription notification.
func (n *Notifier) NewsletterSubscribed(email string) {
	n.dispatch("New newsletter subscription",
		fmt.Sprintf("New newsletter subscriber: %s\n", email),
		DiscordMessage{Content: fmt.Sprintf("New newsletter subscriber: %s", email)})
}

func (n *Notifier) dispatch(subject, mailBody string, msg DiscordMessage) {
	if n == nil {
		return
	}

	if n.Mailer.Configured() {
		if err := n.Mailer.Send(n.MailTo, subject, mailBody); err != nil {
			n.Logger.Error().Err(err).Str("subject", subject).Msg("notification mail failed")
		}
	}

	if n.Discord.Configured() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()
		if err := n.Discord.Send(ctx, msg); err != nil {
			n.Logger.Error().Err(err).Msg("discord notification failed")
		}
	}
}
