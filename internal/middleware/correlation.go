package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	correlationIDKey = "nexus.correlation_id"
	requestLoggerKey = "nexus.request_logger"

	// maxCorrelationIDLength bounds what a caller may inject into every log line.
	maxCorrelationIDLength = 128
)

// CorrelationIDMiddleware tags the request with the caller's X-Correlation-ID,
// or a fresh UUID when the header is absent or unusable, and stores a child
// logger carrying it for handlers further down the chain.
func CorrelationIDMiddleware(baseLogger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIDHeader)
		if !usableCorrelationID(id) {
			id = uuid.NewString()
		}

		c.Set(correlationIDKey, id)
		c.Set(requestLoggerKey, baseLogger.With(zap.String("correlation_id", id)))
		c.Header(CorrelationIDHeader, id)
		c.Next()
	}
}

func usableCorrelationID(id string) bool {
	if id == "" || len(id) > maxCorrelationIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetLogger returns the request logger, or fallback outside the middleware chain.
func GetLogger(c *gin.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := c.Value(requestLoggerKey).(*zap.Logger); ok {
		return l
	}
	return fallback
}

func GetCorrelationID(c *gin.Context) string {
	id, _ := c.Value(correlationIDKey).(string)
	return id
}
