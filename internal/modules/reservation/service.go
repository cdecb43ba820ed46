// README: Sends the reservation confirmation with the receipt PDF attached.
package reservation

import (
	"context"
	"fmt"
	"strings"

	"transfer/internal/logging"
)

type Config struct {
	From       string
	Operations string // BCC mailbox, optional
	Configured bool
}

type Service struct {
	mailer Mailer
	cfg    Config
	log    logging.Logger
}

func NewService(mailer Mailer, cfg Config, log logging.Logger) *Service {
	if log == nil {
		log = logging.Noop()
	}
	return &Service{mailer: mailer, cfg: cfg, log: log}
}

// SendConfirmation fails closed: without credentials nothing is attempted.
func (s *Service) SendConfirmation(ctx context.Context, req Request) error {
	if !s.cfg.Configured || s.mailer == nil {
		return ErrMissingCredentials
	}
	if err := req.Data.Validate(); err != nil {
		return err
	}
	pdf, err := DecodePDF(req.PDFData)
	if err != nil {
		return err
	}
	body, err := RenderConfirmation(req.Data)
	if err != nil {
		return fmt.Errorf("%w: render: %v", ErrSendFailed, err)
	}

	msg := Message{
		From:    s.cfg.From,
		To:      []string{strings.TrimSpace(req.Data.CustomerEmail)},
		Subject: subject(req.Data),
		HTML:    body,
	}
	if s.cfg.Operations != "" {
		msg.Bcc = []string{s.cfg.Operations}
	}
	if pdf != nil {
		msg.Attachments = []Attachment{{Name: attachmentName(req.Data), ContentType: "application/pdf", Data: pdf}}
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		if IsAuthError(err) {
			s.log.Error(ctx, "smtp authentication rejected", logging.Err(err))
			return fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		s.log.Error(ctx, "reservation email failed", logging.Err(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	s.log.Info(ctx, "reservation email sent",
		logging.String("reservation_id", req.Data.ID),
		logging.Int("attachments", len(msg.Attachments)))
	return nil
}

func subject(d Data) string {
	if d.ID != "" {
		return "Confirmação de reserva #" + d.ID
	}
	return "Confirmação de reserva"
}

func attachmentName(d Data) string {
	if d.ID != "" {
		return "reserva-" + d.ID + ".pdf"
	}
	return "reserva.pdf"
}
