package reservation

import (
	"context"
	"errors"
	"io"
	"net/textproto"
	"strings"

	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type Message struct {
	From        string
	To          []string
	Bcc         []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// GomailMailer delivers over SMTP with STARTTLS negotiated by gomail.
type GomailMailer struct {
	dialer *gomail.Dialer
}

func NewGomailMailer(cfg SMTPConfig) *GomailMailer {
	return &GomailMailer{dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)}
}

func (g *GomailMailer) Send(ctx context.Context, m Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", m.To...)
	if len(m.Bcc) > 0 {
		msg.SetHeader("Bcc", m.Bcc...)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)
	for _, a := range m.Attachments {
		data := a.Data
		msg.Attach(a.Name,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return g.dialer.DialAndSend(msg)
}

// IsAuthError reports an SMTP 535 rejection.
func IsAuthError(err error) bool {
	var tp *textproto.Error
	if errors.As(err, &tp) {
		return tp.Code == 535
	}
	return err != nil && strings.Contains(err.Error(), "535")
}
