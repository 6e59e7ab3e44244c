package mail

import (
	"fmt"
	"net/smtp"
)

// SMTPMailer implements usecase.Mailer over plain SMTP. Email delivery
// is an external collaborator; this is the whole integration surface.
type SMTPMailer struct {
	addr string
	auth smtp.Auth
	from string
}

func NewSMTPMailer(host string, port int, user string, pass string, from string) *SMTPMailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, pass, host)
	}

	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}
