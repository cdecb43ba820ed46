// README: Request and session scoping. The session id keys the address-selection cache.
package middleware

import (
	"github.com/gin-gonic/gin"

	"transfer/internal/logging"
	"transfer/internal/modules/location"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"
)

// Session attaches the request id (generated when absent) and, if the client
// sent one, the session id to the request context.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if id := c.GetHeader(HeaderRequestID); id != "" {
			ctx = logging.ContextWithRequestID(ctx, id)
		}
		ctx, requestID := logging.EnsureRequestID(ctx)
		c.Header(HeaderRequestID, requestID)

		if session := c.GetHeader(HeaderSessionID); session != "" && len(session) <= 128 {
			ctx = location.WithSession(ctx, session)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
