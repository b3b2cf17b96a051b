// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"currimon_backend/internals/configs"
)

/* =======================================================================
   Notification sender (external collaborator)

   Delivery is fire-and-forget at every call site: a failure is logged as a
   warning and never fails the operation that triggered it.
======================================================================= */

type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host   string
	port   string
	user   string
	pass   string
	sender string
}

func NewSMTPMailer(cfg *configs.Config) *SMTPMailer {
	return &SMTPMailer{
		host:   cfg.SMTPHost,
		port:   cfg.SMTPPort,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		sender: cfg.MailSender,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("mailer not configured (SMTP_HOST empty)")
	}

	msg := strings.Join([]string{
		"From: " + m.sender,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{to}, []byte(msg))
}
