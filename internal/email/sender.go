// Package email delivers the transactional mail the platform sends: the
// verification OTP and the welcome message.
package email

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/skillswap-platform/skillswap/config"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends through a plain SMTP relay.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s", to, s.cfg.From, subject, body))

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

// LogSender writes mail to the log instead of delivering it. Used in
// development and tests where no relay is configured.
type LogSender struct{}

func (LogSender) Send(to, subject, body string) error {
	log.Printf("email to %s: %s: %s", to, subject, body)
	return nil
}

// OTPMessage formats the verification code email.
func OTPMessage(otp string) (subject, body string) {
	return "Skill Swap Platform - Email Verification OTP",
		fmt.Sprintf("Your OTP for email verification is: %s", otp)
}

// WelcomeMessage formats the post-signup greeting.
func WelcomeMessage(name string) (subject, body string) {
	return "Welcome to Skill Swap Platform!",
		fmt.Sprintf("Hi %s,\n\nWelcome to Skill Swap Platform! Start swapping your skills today.", name)
}
