// README: API gateway; builds the gin engine and delegates to module services.
package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"transfer/internal/http/middleware"
	"transfer/internal/logging"
	"transfer/internal/modules/coupon"
	"transfer/internal/modules/location"
	"transfer/internal/modules/payment"
	"transfer/internal/modules/pricing"
	"transfer/internal/modules/reservation"
	"transfer/internal/observability"
)

type ServerDeps struct {
	Pricing     *pricing.Service
	Location    *location.Service
	Coupons     *coupon.Service
	Payment     *payment.Proxy
	Reservation *reservation.Service
	Metrics     *observability.Metrics
	Logger      logging.Logger
	// TrustedProxies are the only peers whose X-Forwarded-For is honoured.
	// Empty means ClientIP is always the socket peer.
	TrustedProxies []string
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Logger == nil {
		deps.Logger = logging.Noop()
	}
	return &Server{deps: deps}
}

// Routes returns the configured engine. Unknown methods on a known path get 405.
func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(s.deps.TrustedProxies); err != nil {
		s.deps.Logger.Warn(context.Background(), "invalid trusted proxies; trusting none", logging.Err(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.Recovery(s.deps.Logger),
		middleware.CORS(),
		middleware.Session(),
		middleware.Metrics(s.deps.Metrics),
		middleware.Logging(s.deps.Logger),
	)
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	registerRoutes(r, s.deps)
	return r
}
