// README: Payment gateway proxy handler; upstream status and body pass through.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/modules/payment"
)

const maxProxyBody = 1 << 20

type PaymentHandler struct {
	proxy *payment.Proxy
}

func NewPaymentHandler(proxy *payment.Proxy) *PaymentHandler {
	return &PaymentHandler{proxy: proxy}
}

func (h *PaymentHandler) Proxy(c *gin.Context) {
	target, err := payment.ParseTarget(c.Query("target"))
	if err != nil {
		writePaymentError(c, err)
		return
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxProxyBody))
	if err != nil {
		writeError(c, http.StatusBadRequest, "unreadable body")
		return
	}
	query := c.Request.URL.Query()
	id := query.Get("id")
	query.Del("target")
	query.Del("id")

	resp, err := h.proxy.Forward(c.Request.Context(), payment.Request{
		Method: c.Request.Method,
		Target: target,
		ID:     id,
		Query:  query,
		Body:   body,
	})
	if err != nil {
		writePaymentError(c, err)
		return
	}
	c.Data(resp.Status, resp.ContentType, resp.Body)
}
