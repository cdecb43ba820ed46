// README: Coupon validation and usage registration handlers.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/coupon"
)

type CouponHandler struct {
	coupons *coupon.Service
}

func NewCouponHandler(svc *coupon.Service) *CouponHandler {
	return &CouponHandler{coupons: svc}
}

type couponReq struct {
	Code string `json:"code"`
}

func (h *CouponHandler) Validate(c *gin.Context) {
	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, http.StatusBadRequest, coupon.Result{Valid: false, Message: "invalid json"})
		return
	}
	res, err := h.coupons.Validate(c.Request.Context(), c.ClientIP(), req.Code)
	switch {
	case errors.Is(err, coupon.ErrRateLimited):
		writeJSON(c, http.StatusTooManyRequests, res)
	case errors.Is(err, coupon.ErrEmptyCode):
		writeJSON(c, http.StatusBadRequest, res)
	default:
		writeJSON(c, http.StatusOK, res)
	}
}

// RecordUsage is best-effort: store failures are reported in the body with 200.
func (h *CouponHandler) RecordUsage(c *gin.Context) {
	var req couponReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeFailure(c, http.StatusBadRequest, "invalid json")
		return
	}
	usage, err := h.coupons.RecordUsage(c.Request.Context(), req.Code, c.ClientIP(), c.Request.UserAgent())
	switch {
	case errors.Is(err, coupon.ErrEmptyCode):
		writeFailure(c, http.StatusBadRequest, err.Error())
	case err != nil:
		_ = c.Error(err)
		writeFailure(c, http.StatusOK, "usage not recorded")
	default:
		writeJSON(c, http.StatusOK, gin.H{"ok": true, "id": usage.ID})
	}
}
