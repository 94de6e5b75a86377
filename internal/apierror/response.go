package apierror

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the RFC 9457 media type
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem sends problem and aborts the handler chain. Instance
// defaults to the request path.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}
	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// GetRequestID returns the id set by the RequestID middleware, falling
// back to the inbound X-Request-ID header
func GetRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	if c.Request == nil {
		return ""
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError reports every field that failed validation at once
func NewValidationError(requestID string, errors []FieldError) *ProblemDetails {
	return kindValidation.problem(requestID, "One or more fields failed validation", errors...)
}

func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	p := kindNotFound.problem(requestID, fmt.Sprintf("%s with ID '%s' was not found", resource, id))
	p.UserMessage = fmt.Sprintf("The requested %s could not be found", resource)
	return p
}

func NewConflictError(requestID, detail string) *ProblemDetails {
	return kindConflict.problem(requestID, detail)
}

// NewInternalError never carries the cause; log it before responding
func NewInternalError(requestID string) *ProblemDetails {
	return kindInternal.problem(requestID, "An unexpected error occurred")
}

// NewBadRequestError is for bodies and parameters that could not be parsed
func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	p := kindBadRequest.problem(requestID, detail)
	p.UserMessage = userMessage
	return p
}

func NewInvalidUUIDError(requestID, field, value string) *ProblemDetails {
	return kindInvalidUUID.problem(requestID,
		fmt.Sprintf("Invalid UUID format for field '%s': '%s'", field, value),
		FieldError{Field: field, Message: "must be a valid UUIDv7", Code: "invalid_uuid"},
	)
}

// NewFutureTimestampError rejects a progress review dated after today
func NewFutureTimestampError(requestID, field string) *ProblemDetails {
	return kindFutureTimestamp.problem(requestID,
		fmt.Sprintf("Field '%s' is dated after today", field),
		FieldError{Field: field, Message: "must not be after today", Code: "future_timestamp"},
	)
}

// NewServiceUnavailableError asks the client to retry after retryAfter seconds
func NewServiceUnavailableError(requestID string, retryAfter int) *ProblemDetails {
	p := kindUnavailable.problem(requestID, "The record store is temporarily unavailable")
	p.RetryAfter = &retryAfter
	return p
}
