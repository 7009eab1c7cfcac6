package middleware

import (
	"net/http"

	domainerr "github.com/astrodash/astro-api/internal/domain/error"
	coreport "github.com/astrodash/astro-api/internal/domain/port/core"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics anywhere in the handler chain into a 500
// response. A panic mid-pipeline must never take the whole API down while
// other report generations are in flight.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			logger.Error("Panic recovered in API request", map[string]any{
				"error":      r,
				"method":     c.Request.Method,
				"path":       c.Request.URL.Path,
				"client_ip":  c.ClientIP(),
				"request_id": c.GetHeader("X-Request-ID"),
			})

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:  domainerr.ErrorCode(domainerr.ErrInternalServer),
				Error: "internal server error",
			})
		}()

		c.Next()
	}
}
