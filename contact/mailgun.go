package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunConfig holds the credentials and addresses for notifications.
type MailgunConfig struct {
	Domain string
	APIKey string
	From   string
	To     string
}

// Configured reports whether enough is set to send mail.
func (c MailgunConfig) Configured() bool {
	return c.Domain != "" && c.APIKey != "" && c.To != ""
}

// MailgunNotifier emails the team inbox about each new submission.
type MailgunNotifier struct {
	cfg    MailgunConfig
	client *mailgun.MailgunImpl
}

// NewMailgunNotifier returns nil when cfg is not configured.
func NewMailgunNotifier(cfg MailgunConfig) *MailgunNotifier {
	if !cfg.Configured() {
		return nil
	}
	if cfg.From == "" {
		cfg.From = "Neuralarc Matrix <noreply@" + cfg.Domain + ">"
	}
	return &MailgunNotifier{
		cfg:    cfg,
		client: mailgun.NewMailgun(cfg.Domain, cfg.APIKey),
	}
}

// Notify sends a plain-text summary of s.
func (n *MailgunNotifier) Notify(ctx context.Context, s Submission) error {
	subject, body := notificationText(s)
	msg := n.client.NewMessage(n.cfg.From, subject, body, n.cfg.To)
	msg.SetReplyTo(s.Email)

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, _, err := n.client.Send(sendCtx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}

func notificationText(s Submission) (subject, body string) {
	interest := Interest(s.Interest).Label()
	subject = fmt.Sprintf("New enquiry from %s: %s", s.Name, interest)

	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", s.Name)
	fmt.Fprintf(&b, "Email: %s\n", s.Email)
	fmt.Fprintf(&b, "Interest: %s\n", interest)
	fmt.Fprintf(&b, "Received: %s\n\n", s.CreatedAt.Format(time.RFC1123))
	b.WriteString(s.Message)
	b.WriteString("\n")
	return subject, b.String()
}
