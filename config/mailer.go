package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"

	mail "github.com/go-mail/mail/v2"
)

// Mailer sends HTML mail over SMTP with mandatory STARTTLS.
type Mailer struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string // e.g. "Dorm Office <no-reply@your.org>"
	SkipTLSVerify bool
}

// MailerFromEnv reads SMTP_* variables. Port defaults to 587.
func MailerFromEnv() *Mailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return &Mailer{
		Host:          os.Getenv("SMTP_HOST"),
		Port:          port,
		User:          os.Getenv("SMTP_USER"),
		Pass:          os.Getenv("SMTP_PASS"),
		From:          os.Getenv("SMTP_FROM"),
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// Configured reports whether host and sender are set.
func (m *Mailer) Configured() bool {
	return m != nil && m.Host != "" && m.From != ""
}

// BuildMessage assembles the outgoing message without sending it.
func (m *Mailer) BuildMessage(to []string, subject, html string) *mail.Message {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)
	return msg
}

func (m *Mailer) SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !m.Configured() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	d := mail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         m.Host,
		InsecureSkipVerify: m.SkipTLSVerify, // dev only
	}

	return d.DialAndSend(m.BuildMessage(to, subject, html))
}
