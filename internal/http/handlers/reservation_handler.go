// README: Reservation confirmation email handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/reservation"
)

type ReservationHandler struct {
	reservations *reservation.Service
}

func NewReservationHandler(svc *reservation.Service) *ReservationHandler {
	return &ReservationHandler{reservations: svc}
}

func (h *ReservationHandler) SendEmail(c *gin.Context) {
	var req reservation.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.reservations.SendConfirmation(c.Request.Context(), req); err != nil {
		writeReservationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true})
}
