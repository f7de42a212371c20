package notify

import (
	"fmt"
	"go-jobwatch-automation/internal/config"
	"go-jobwatch-automation/internal/monitor"

	gomail "gopkg.in/gomail.v2"
)

// Email sends the event over SMTP with STARTTLS, the Gmail app-password
// flow. Each send dials a fresh connection; events are rare enough that
// holding a session open buys nothing.
type Email struct {
	cfg config.EmailConfig
}

func NewEmail(cfg config.EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Send(ev monitor.Event) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email)
	m.SetHeader("To", e.cfg.ToEmail)
	m.SetHeader("Subject", "JobWatch Alert")
	m.SetBody("text/plain", emailBody(ev))

	d := gomail.NewDialer(e.cfg.SMTPServer, e.cfg.SMTPPort, e.cfg.Email, e.cfg.Password)
	return d.DialAndSend(m)
}

func emailBody(ev monitor.Event) string {
	return fmt.Sprintf("[%s] %s\nJob URL: %s",
		ev.Timestamp.Format("2006-01-02 15:04:05"), ev.Message, ev.TargetURL)
}
