package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dmitrijs2005/campusgate/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOTPMessage(t *testing.T) {
	subject, body := OTPMessage("123456", 10*time.Minute)
	assert.Equal(t, OTPSubject, subject)
	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "expire in 10 minutes")

	_, body = OTPMessage("123456", time.Minute)
	assert.Contains(t, body, "expire in 1 minute.")
}

func TestLogSender_WritesMessage(t *testing.T) {
	var buf bytes.Buffer
	s := NewLogSender(logging.NewJSON(&buf, slog.LevelInfo))

	require.NoError(t, s.Send(context.Background(), "a@kongu.edu", "subj", "code 123456"))

	out := buf.String()
	assert.Contains(t, out, `"to":"a@kongu.edu"`)
	assert.Contains(t, out, "code 123456")
	assert.Contains(t, out, `"module":"log_sender"`)
}
