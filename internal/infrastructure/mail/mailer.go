package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/rkeng/billing-api/internal/application/auth"
	"github.com/rkeng/billing-api/pkg/config"
)

var _ auth.Mailer = (*SMTPMailer)(nil)

// SMTPMailer delivers password-reset tokens over SMTP using gomail.
// Account credentials come from configuration resolved at startup.
type SMTPMailer struct {
	cfg         config.SMTPConfig
	companyName string
}

// NewSMTPMailer builds the mailer.
func NewSMTPMailer(cfg config.SMTPConfig, companyName string) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, companyName: companyName}
}

// SendPasswordReset emails the reset token to the user.
func (m *SMTPMailer) SendPasswordReset(toEmail, token string) error {
	if !m.cfg.Enabled() {
		return fmt.Errorf("mail: SMTP account not configured")
	}
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Password Reset - %s Billing", m.companyName))
	msg.SetBody("text/plain", fmt.Sprintf("Use this token to reset your password:\n\n%s\n", token))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: send reset email: %w", err)
	}
	return nil
}
