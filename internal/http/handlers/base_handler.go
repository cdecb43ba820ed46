// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/location"
	"transfer/internal/modules/payment"
	"transfer/internal/modules/pricing"
	"transfer/internal/modules/reservation"
)

type errorResponse struct {
	Error string `json:"error"`
}

// failureResponse is the validation shape the booking wizard expects.
type failureResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Error codes surfaced to the client for fatal configuration and upstream failures.
const (
	CodeSMTPConfigMissing  = "SMTP_CONFIG_MISSING"
	CodeSMTPAuthFailed     = "SMTP_AUTH_FAILED"
	CodeEmailSendFailed    = "EMAIL_SEND_FAILED"
	CodePaymentKeyMissing  = "PAYMENT_API_KEY_MISSING"
	CodePaymentUnreachable = "PAYMENT_UPSTREAM_UNAVAILABLE"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeFailure(c *gin.Context, status int, msg string) {
	writeJSON(c, status, failureResponse{OK: false, Message: msg})
}

func writePricingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pricing.ErrInvalidInput), errors.Is(err, pricing.ErrUnknownCategory):
		writeFailure(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeLocationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, location.ErrBadRequest), errors.Is(err, location.ErrNoSession), errors.Is(err, location.ErrTooManySelections):
		writeFailure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, location.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, location.ErrPlacesUnavailable):
		writeError(c, http.StatusServiceUnavailable, err.Error())
	default:
		_ = c.Error(err)
		writeError(c, http.StatusBadGateway, "places lookup failed")
	}
}

func writePaymentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrUnknownTarget), errors.Is(err, payment.ErrInvalidID):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, payment.ErrMissingAPIKey):
		writeError(c, http.StatusInternalServerError, CodePaymentKeyMissing)
	case errors.Is(err, payment.ErrUpstream):
		_ = c.Error(err)
		writeError(c, http.StatusBadGateway, CodePaymentUnreachable)
	default:
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeReservationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, reservation.ErrInvalid):
		writeFailure(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, reservation.ErrMissingCredentials):
		writeJSON(c, http.StatusInternalServerError, failureResponse{Message: "email service not configured", Error: CodeSMTPConfigMissing})
	case errors.Is(err, reservation.ErrAuthFailed):
		_ = c.Error(err)
		writeJSON(c, http.StatusInternalServerError, failureResponse{Message: "email authentication failed", Error: CodeSMTPAuthFailed})
	default:
		_ = c.Error(err)
		writeJSON(c, http.StatusInternalServerError, failureResponse{Message: "email could not be sent", Error: CodeEmailSendFailed})
	}
}
