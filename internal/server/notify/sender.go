// Package notify delivers OTP codes to users.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/logging"
)

// Sender delivers one message. A non-nil error means the message was not
// handed off.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// OTPSubject is the subject line of signup code messages.
const OTPSubject = "Your OTP Code - Kongu University Attendance"

// OTPMessage renders the subject and plain-text body for a signup code.
func OTPMessage(code string, validity time.Duration) (string, string) {
	body := fmt.Sprintf(
		"Kongu University\r\n\r\n"+
			"Your verification code for account signup is: %s\r\n\r\n"+
			"This code will expire in %s.\r\n"+
			"If you didn't request this code, please ignore this email.\r\n",
		code, humanMinutes(validity))
	return OTPSubject, body
}

func humanMinutes(d time.Duration) string {
	m := int(d.Round(time.Minute) / time.Minute)
	if m == 1 {
		return "1 minute"
	}
	return fmt.Sprintf("%d minutes", m)
}

// LogSender writes messages to the log instead of sending them. It is meant
// for local development only.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "log_sender")}
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.Info(ctx, "mail not sent (log transport)", "to", to, "subject", subject, "body", body)
	return nil
}
