// api/util/http_util.go
package util

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api_errors "github.com/trialdesk/participant-manager/api/errors"
	logger "github.com/trialdesk/participant-manager/api/logging"
)

// Violation is a single field-level validation failure.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body: a description plus, for
// validation failures, the field-level violations.
type ErrorResponse struct {
	ErrorDescription string      `json:"error_description"`
	Violations       []Violation `json:"violations,omitempty"`
}

// RespondWithErrorCode translates a typed error code to its HTTP status.
// Errors that are not ErrorCode values surface as an internal server error.
func RespondWithErrorCode(c *gin.Context, err error) {
	var code api_errors.ErrorCode
	if !errors.As(err, &code) {
		code = api_errors.InternalServer
	}
	logger.Error(code.Description,
		zap.Error(err),
		zap.String("code", code.Code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code.Status, ErrorResponse{ErrorDescription: code.Description})
}

// RespondWithViolations reports field-level validation failures.
func RespondWithViolations(c *gin.Context, violations []Violation) {
	logger.Warn("Request validation failed",
		zap.Int("violations", len(violations)),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(http.StatusBadRequest, ErrorResponse{
		ErrorDescription: api_errors.BadRequest.Description,
		Violations:       violations,
	})
}

// GetUserIDFromContext returns the authenticated admin id placed in the
// context by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", api_errors.Unauthorized
	}
	return userID.(string), nil
}
