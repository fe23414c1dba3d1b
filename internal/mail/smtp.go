package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Soumendu22/NSBack/config"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPMailer sends mail through the configured SMTP relay.
type SMTPMailer struct {
	cfg    config.SMTP
	logger *zap.Logger
}

// NewSMTPMailer creates a mailer for cfg. Connections are opened per message.
func NewSMTPMailer(cfg config.SMTP, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send delivers msg with a plain text body and an HTML alternative.
func (s *SMTPMailer) Send(ctx context.Context, msg *Message) (string, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return "", fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(time.Duration(s.cfg.Timeout) * time.Second),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("failed to send %s email: %w", msg.Template, err)
	}

	messageID := strings.Join(m.GetGenHeader(gomail.HeaderMessageID), "")
	s.logger.Info("Email sent",
		zap.String("template", msg.Template),
		zap.String("message_id", messageID),
	)
	return messageID, nil
}
