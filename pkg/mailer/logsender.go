package mailer

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogSender is a development stand-in wired when MAIL_SEND_ENABLED=false.
// It records the delivery instead of performing it and never fails.
type LogSender struct {
	Logger *logrus.Logger
}

func NewLogSender(logger *logrus.Logger) *LogSender {
	return &LogSender{Logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, _ string) error {
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email sending disabled, skipping delivery")
	}
	return nil
}
