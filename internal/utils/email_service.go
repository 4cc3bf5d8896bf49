package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/giftlink/giftlink-backend/internal/config"
)

// EmailService sends transactional mail over SMTP.
type EmailService struct {
	cfg config.EmailConfig
}

// NewEmailService creates an EmailService from the email configuration.
func NewEmailService(cfg config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendResetCode emails the password reset verification code.
func (s *EmailService) SendResetCode(to, code string) error {
	subject := "Your GiftLink password reset code"
	body := fmt.Sprintf(
		"Hello,\r\n\r\n"+
			"Your verification code is: %s\r\n\r\n"+
			"The code expires in 3 minutes. If you did not request a password reset, you can ignore this email.\r\n\r\n"+
			"%s",
		code, s.cfg.FromName)

	return s.send(to, subject, body)
}

func (s *EmailService) send(to, subject, body string) error {
	from := s.cfg.FromEmail
	if from == "" {
		from = s.cfg.SMTPUsername
	}

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.cfg.SMTPHost + ":" + s.cfg.SMTPPort
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
