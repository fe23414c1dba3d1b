package mail

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogMailer records messages in the log instead of sending them. It is used when
// SMTP is disabled so signup and agent emails still complete.
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a mailer that only logs
func NewLogMailer(logger *zap.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (l *LogMailer) Send(_ context.Context, msg *Message) (string, error) {
	messageID := fmt.Sprintf("<%s@nexus-sentinel.local>", uuid.New().String())
	l.logger.Info("SMTP disabled, email not delivered",
		zap.String("template", msg.Template),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("message_id", messageID),
	)
	return messageID, nil
}
