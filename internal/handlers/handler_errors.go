package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/monetary_correction_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithServiceError maps a service error to its HTTP status and writes it.
// fallback is the message used for unexpected errors so internals are not leaked.
func respondWithServiceError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var domainErr *apperrors.OutOfDomainError
	switch {
	case errors.As(err, &domainErr):
		logger.Warn("Requested date outside series domain", slog.String("error", err.Error()))
		body := gin.H{"error": err.Error()}
		if !domainErr.Min.IsZero() {
			body["minDate"] = domainErr.Min.Format("2006-01")
			body["maxDate"] = domainErr.Max.Format("2006-01")
		}
		c.JSON(http.StatusUnprocessableEntity, body)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": errorMessage(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": errorMessage(err)})
	case errors.Is(err, apperrors.ErrUpstream):
		logger.Error("Series provider unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Index data provider is unavailable, try again later"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// errorMessage prefers the AppError message over the wrapped chain.
func errorMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
