package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOTPMessage(t *testing.T) {
	subject, body := OTPMessage("482913")
	assert.Equal(t, "Skill Swap Platform - Email Verification OTP", subject)
	assert.Contains(t, body, "482913")
}

func TestWelcomeMessage(t *testing.T) {
	subject, body := WelcomeMessage("Alice")
	assert.Contains(t, subject, "Welcome")
	assert.Contains(t, body, "Alice")
}

func TestLogSenderNeverFails(t *testing.T) {
	assert.NoError(t, LogSender{}.Send("alice@example.com", "subject", "body"))
}
