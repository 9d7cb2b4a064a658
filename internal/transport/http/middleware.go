package httpt

import (
	"net/http"
	"time"

	"orderlookup/pkg/logger"

	"github.com/gin-gonic/gin"
)

func (h *WidgetHandler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = h.log.GenerateRequestID()
		}
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", requestID)

		c.Next()
	}
}

func (h *WidgetHandler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.LogAttrs(c.Request.Context(), logger.InfoLevel, "HTTP request",
			logger.String("method", method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", statusCode),
			logger.String("duration", latency.String()),
			logger.String("client_ip", c.ClientIP()),
			logger.String("user_agent", c.Request.UserAgent()),
		)

		h.metrics.Request(method, path, statusCode, latency)

		if latency > _slowRequestTimeout {
			h.metrics.SlowRequest(method, path, statusCode, latency)
		}
	}
}

// sessionMiddleware attaches the browser's session, issuing a new cookie when needed.
func (h *WidgetHandler) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(_sessionCookie)

		sess, created := h.sessions.Acquire(id)
		if created {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(_sessionCookie, sess.ID, int(h.cookieTTL.Seconds()), "/", "", false, true)
		}

		c.Set(_sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *Session {
	return c.MustGet(_sessionKey).(*Session)
}
