package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/astrodash/astro-api/internal/domain/error"
	"github.com/astrodash/astro-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsInsufficientBalanceError(err),
		errors.Is(err, domainerr.ErrUserHasReferences),
		errors.Is(err, domainerr.ErrDuplicateUser),
		errors.Is(err, domainerr.ErrDuplicateTransaction),
		errors.Is(err, domainerr.ErrReportAlreadyFinal):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUserBlocked):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrKundliComputation),
		errors.Is(err, domainerr.ErrContentGeneration),
		errors.Is(err, domainerr.ErrRenderFailed),
		errors.Is(err, domainerr.ErrRenderTimeout),
		errors.Is(err, domainerr.ErrBrowserLaunch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error body for a domain error.
// Internal errors never leak their detail to the client.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, dto.ErrorResponse{
		Code:  domainerr.ErrorCode(err),
		Error: message,
	})
}

// respondBadRequest writes a 400 with an explicit message for binding and
// parsing failures
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:  domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Error: message,
	})
}
