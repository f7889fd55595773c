// Package smtp provides a mailer.Mailer delivering through an SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"journal/pkg/logger"
	"journal/pkg/mailer"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Sender delivers messages. *mail.Client implements it.
type Sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// TLS requires STARTTLS. Without it TLS is used opportunistically.
	TLS     bool
	Timeout time.Duration
}

// Mailer renders templates and hands the message to a Sender.
type Mailer struct {
	sender    Sender
	from      string
	templates *mailer.Templates
}

func (m *Mailer) Send(ctx context.Context, to, template string, data map[string]string) error {
	subject, body, err := m.templates.Render(template, data)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("could not set from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("could not set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := m.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("could not send %s email: %w", template, err)
	}
	logger.Debug(ctx, "email sent", zap.String("template", template))

	return nil
}

var _ mailer.Mailer = (*Mailer)(nil)

// NewWithSender constructs a Mailer over an existing Sender.
func NewWithSender(sender Sender, from string, templates *mailer.Templates) *Mailer {
	return &Mailer{sender: sender, from: from, templates: templates}
}

// New constructs a Mailer connecting to the configured relay for every send.
func New(options Options, templates *mailer.Templates) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(options.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if options.TLS {
		opts[1] = mail.WithTLSPolicy(mail.TLSMandatory)
	}
	if options.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(options.Timeout))
	}
	if options.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(options.Username),
			mail.WithPassword(options.Password))
	}

	client, err := mail.NewClient(options.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return NewWithSender(client, options.From, templates), nil
}
