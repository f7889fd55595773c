package mailer

import (
	"context"
	"journal/pkg/logger"

	"go.uber.org/zap"
)

// LogMailer renders emails into the log instead of sending them. It is used
// when no SMTP server is configured.
type LogMailer struct {
	templates *Templates
}

func (l *LogMailer) Send(ctx context.Context, to, template string, data map[string]string) error {
	subject, body, err := l.templates.Render(template, data)
	if err != nil {
		return err
	}
	logger.Info(ctx, "email not sent, smtp disabled",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body))

	return nil
}

var _ Mailer = (*LogMailer)(nil)

func NewLogMailer(templates *Templates) *LogMailer {
	return &LogMailer{templates: templates}
}
