package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "nomix/internal/errors"
	"nomix/internal/logger"
	"nomix/internal/middleware"
	"nomix/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is the body of endpoints that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseDateQuery reads the optional ?date=YYYY-MM-DD parameter. A missing or
// empty value means today (UTC).
func parseDateQuery(c *gin.Context, now func() time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return models.Day(now()), nil
	}
	day, err := models.ParseDay(raw)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return day, nil
}

// authorizeUser rejects requests whose bearer token belongs to a different
// user than userID. Anonymous requests are allowed through.
func authorizeUser(c *gin.Context, userID uint) error {
	tokenUser, ok := middleware.AuthenticatedUserID(c)
	if ok && tokenUser != userID {
		return apperrors.ErrForbidden
	}
	return nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"request_id", middleware.RequestID(c),
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{
			Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.RequestID(c),
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    apperrors.ErrInternalServer.Code,
			Message: apperrors.ErrInternalServer.Message,
		},
	})
}
