package middleware

import (
	"fmt"
	"net/http"

	"github.com/Soumendu22/NSBack/internal/dto"
	"github.com/Soumendu22/NSBack/internal/metrics"
	"github.com/Soumendu22/NSBack/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandlingMiddleware recovers handler panics into a 500 response. The panic
// value is only echoed back when exposeDetails is set.
func ErrorHandlingMiddleware(logger *zap.Logger, m *metrics.Metrics, exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log := GetLogger(c, logger)
				log.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				m.RecordPanic()

				var description []string
				if exposeDetails {
					description = append(description, fmt.Sprint(err))
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					utils.NewErrorResponse(http.StatusInternalServerError, "Something went wrong!", description...))
			}
		}()

		c.Next()
	}
}

// NotFoundHandler answers requests that match no route
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NotFoundResponse{
			Error:  "Route not found",
			Path:   c.Request.URL.Path,
			Method: c.Request.Method,
		})
	}
}
