package mail

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

type Attachment struct {
	Name    string
	Content io.Reader
}

// Sender sends a multipart mail with an optional plain-text alternative and
// attachments. Attachments without a name or content are skipped.
type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	m := mail.NewMessage()

	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	switch {
	case textBody != "" && htmlBody != "":
		m.SetBody("text/plain", textBody)
		m.AddAlternative("text/html", htmlBody)
	case htmlBody != "":
		m.SetBody("text/html", htmlBody)
	case textBody != "":
		m.SetBody("text/plain", textBody)
	}

	for _, attachment := range attachments {
		if attachment.Content == nil || attachment.Name == "" {
			continue
		}
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, attachment.Content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
