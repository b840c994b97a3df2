package notify

import (
	"context"
	"fmt"
	"html"
	"log"

	"github.com/resend/resend-go/v2"
)

// EmailNotifier publishes messages to a fixed recipient via Resend. Used to
// alert the site owner about new contact messages.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     string
}

func NewEmailNotifier(apiKey, from, to string) *EmailNotifier {
	return &EmailNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (n *EmailNotifier) Publish(ctx context.Context, subject, message string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: subject,
		Html: fmt.Sprintf(`
			<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">
				<h2 style="color: #333;">%s</h2>
				<p style="white-space: pre-wrap;">%s</p>
			</div>
		`, html.EscapeString(subject), html.EscapeString(message)),
	}

	sent, err := n.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Notification email sent (ID: %s)", sent.Id)
	return nil
}
