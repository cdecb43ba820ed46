// README: Vehicle catalogue and trip quote handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/pricing"
)

type QuoteHandler struct {
	pricing *pricing.Service
}

func NewQuoteHandler(svc *pricing.Service) *QuoteHandler {
	return &QuoteHandler{pricing: svc}
}

func (h *QuoteHandler) Vehicles(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"vehicles": pricing.Catalog})
}

type quoteReq struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Category    string `json:"category"`
}

// Quote returns one quote when a category is given, otherwise every category
// in catalogue order.
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req quoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeFailure(c, http.StatusBadRequest, pricing.ErrInvalidInput.Error())
		return
	}

	if req.Category != "" {
		category, err := pricing.ParseCategory(req.Category)
		if err != nil {
			writePricingError(c, err)
			return
		}
		q, err := h.pricing.ResolvePrice(c.Request.Context(), req.Origin, req.Destination, category)
		if err != nil {
			writePricingError(c, err)
			return
		}
		writeJSON(c, http.StatusOK, gin.H{"ok": true, "quote": q})
		return
	}

	quotes, err := h.pricing.QuoteAll(c.Request.Context(), req.Origin, req.Destination)
	if err != nil {
		writePricingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "quotes": quotes})
}
