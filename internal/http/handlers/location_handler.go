// README: Address autocomplete, explicit selections and region lookup.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/location"
	"transfer/internal/types"
)

type LocationHandler struct {
	location *location.Service
}

func NewLocationHandler(svc *location.Service) *LocationHandler {
	return &LocationHandler{location: svc}
}

func (h *LocationHandler) Autocomplete(c *gin.Context) {
	suggestions, err := h.location.Autocomplete(c.Request.Context(), c.Query("input"))
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"suggestions": suggestions})
}

type selectPlaceReq struct {
	PlaceID     string `json:"placeId"`
	Description string `json:"description"`
}

func (h *LocationHandler) SelectPlace(c *gin.Context) {
	var req selectPlaceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	entry, err := h.location.SelectPlace(c.Request.Context(), req.PlaceID, req.Description)
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "selection": entry})
}

type selectionReq struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

func (h *LocationHandler) Select(c *gin.Context) {
	var req selectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	entry, err := h.location.Select(c.Request.Context(), req.Address, types.Point{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		writeLocationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"ok": true, "selection": entry})
}

func (h *LocationHandler) Identify(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		writeFailure(c, http.StatusBadRequest, "missing q")
		return
	}
	region, ok := h.location.Identify(q)
	if !ok {
		writeJSON(c, http.StatusOK, gin.H{"found": false})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"found": true, "region": region.Key, "name": region.Name})
}
