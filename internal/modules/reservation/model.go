// README: Reservation confirmation payload as posted by the booking wizard.
package reservation

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

var (
	ErrInvalid            = errors.New("invalid reservation")
	ErrMissingCredentials = errors.New("smtp credentials missing")
	ErrAuthFailed         = errors.New("smtp authentication failed")
	ErrSendFailed         = errors.New("email send failed")
)

type Data struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Vehicle       string `json:"vehicle"`
	Passengers    int    `json:"passengers"`
	Flight        string `json:"flight"`
	Price         string `json:"price"`
	Notes         string `json:"notes"`
}

type Request struct {
	Data    Data   `json:"reservationData"`
	PDFData string `json:"pdfData"`
}

// Validate reports the first missing or malformed field, wrapped in ErrInvalid.
func (d Data) Validate() error {
	required := []struct{ name, value string }{
		{"customerName", d.CustomerName},
		{"customerEmail", d.CustomerEmail},
		{"origin", d.Origin},
		{"destination", d.Destination},
		{"date", d.Date},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalid, f.name)
		}
	}
	if _, err := mail.ParseAddress(d.CustomerEmail); err != nil {
		return fmt.Errorf("%w: customerEmail is not a valid address", ErrInvalid)
	}
	if d.Passengers < 0 {
		return fmt.Errorf("%w: passengers must not be negative", ErrInvalid)
	}
	return nil
}

// DecodePDF accepts raw base64 or a data URL. An empty string yields no attachment.
func DecodePDF(pdfData string) ([]byte, error) {
	s := strings.TrimSpace(pdfData)
	if s == "" {
		return nil, nil
	}
	if i := strings.Index(s, ","); strings.HasPrefix(s, "data:") && i >= 0 {
		s = s[i+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: pdfData is not valid base64", ErrInvalid)
	}
	if !strings.HasPrefix(string(raw), "%PDF") {
		return nil, fmt.Errorf("%w: pdfData is not a PDF document", ErrInvalid)
	}
	return raw, nil
}
