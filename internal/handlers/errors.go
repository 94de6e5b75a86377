package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/JonnyWalker81/habithub/backend/internal/apierror"
	"github.com/JonnyWalker81/habithub/backend/internal/logger"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

// writeBindError reports a request body that failed to decode or validate
func writeBindError(c *gin.Context, err error) {
	requestID := apierror.GetRequestID(c)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]apierror.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, apierror.FieldError{
				Field:   jsonFieldName(fe.Field()),
				Message: describeTag(fe),
				Code:    fe.Tag(),
			})
		}
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, fieldErrors))
		return
	}

	apierror.WriteProblem(c, apierror.NewBadRequestError(requestID, err.Error(), "Invalid JSON format"))
}

// jsonFieldName converts a Go field name such as EndDate to end_date
func jsonFieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "is invalid"
	}
}

// writeServiceError maps service and repository errors to problem documents
func writeServiceError(c *gin.Context, err error, resource, id string) {
	requestID := apierror.GetRequestID(c)

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{
			{Field: verr.Field, Message: verr.Message, Code: "invalid"},
		}))
	case errors.Is(err, service.ErrInvalidUUID), errors.Is(err, service.ErrNotUUIDv7):
		apierror.WriteProblem(c, apierror.NewInvalidUUIDError(requestID, "id", id))
	case errors.Is(err, service.ErrFutureTimestamp):
		apierror.WriteProblem(c, apierror.NewFutureTimestampError(requestID, "date"))
	case errors.Is(err, repository.ErrNotFound):
		apierror.WriteProblem(c, apierror.NewNotFoundError(requestID, resource, id))
	case isUniqueViolation(err):
		apierror.WriteProblem(c, apierror.NewConflictError(requestID, "A "+strings.ToLower(resource)+" with this ID already exists"))
	default:
		logger.Ctx(c.Request.Context()).Error("request failed",
			logger.String("resource", resource),
			logger.String("id", id),
			logger.Err(err),
		)
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "23505") // PostgreSQL unique violation code
}

// parseDateParam reads a YYYY-MM-DD (or RFC 3339) query parameter.
// ok is false after a problem response has been written.
func parseDateParam(c *gin.Context, name string) (models.Date, bool) {
	raw := c.Query(name)
	if raw == "" {
		return models.Date{}, true
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: name, Message: "must be a date in YYYY-MM-DD format", Code: "invalid_format"},
		}))
		return models.Date{}, false
	}
	return d, true
}

// referenceTime returns the ?date= reference, or the zero time meaning "now"
func referenceTime(c *gin.Context) (time.Time, bool) {
	d, ok := parseDateParam(c, "date")
	if !ok {
		return time.Time{}, false
	}
	return d.Time, true
}

// pathDate parses a :date path segment
func pathDate(c *gin.Context) (models.Date, bool) {
	raw := c.Param("date")
	d, err := models.ParseDate(raw)
	if err != nil || d.IsZero() {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
			{Field: "date", Message: "must be a date in YYYY-MM-DD format", Code: "invalid_format"},
		}))
		return models.Date{}, false
	}
	return d, true
}
