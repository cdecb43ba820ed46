// README: HTTP route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/http/handlers"
)

func registerRoutes(r *gin.Engine, deps ServerDeps) {
	api := r.Group("/api")

	quoteHandler := handlers.NewQuoteHandler(deps.Pricing)
	api.GET("/vehicles", quoteHandler.Vehicles)
	api.POST("/quotes", quoteHandler.Quote)

	locationHandler := handlers.NewLocationHandler(deps.Location)
	api.GET("/places/autocomplete", locationHandler.Autocomplete)
	api.POST("/places/select", locationHandler.SelectPlace)
	api.POST("/locations/selection", locationHandler.Select)
	api.GET("/locations/identify", locationHandler.Identify)

	couponHandler := handlers.NewCouponHandler(deps.Coupons)
	api.POST("/coupons/validate", couponHandler.Validate)
	api.POST("/coupons/usage", couponHandler.RecordUsage)

	paymentHandler := handlers.NewPaymentHandler(deps.Payment)
	for _, m := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		api.Handle(m, "/payment-proxy", paymentHandler.Proxy)
	}

	reservationHandler := handlers.NewReservationHandler(deps.Reservation)
	api.POST("/reservations/email", reservationHandler.SendEmail)

	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
