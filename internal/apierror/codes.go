package apierror

import "net/http"

// Problem type URIs
const (
	TypeValidation      = "urn:habithub:error:validation"
	TypeNotFound        = "urn:habithub:error:not_found"
	TypeConflict        = "urn:habithub:error:conflict"
	TypeInternal        = "urn:habithub:error:internal"
	TypeUnavailable     = "urn:habithub:error:unavailable"
	TypeInvalidUUID     = "urn:habithub:error:invalid_uuid"
	TypeFutureTimestamp = "urn:habithub:error:future_timestamp"
	TypeBadRequest      = "urn:habithub:error:bad_request"
)

// Problem titles, one per type
const (
	TitleValidation      = "Validation Error"
	TitleNotFound        = "Resource Not Found"
	TitleConflict        = "Resource Conflict"
	TitleInternal        = "Internal Server Error"
	TitleUnavailable     = "Service Unavailable"
	TitleInvalidUUID     = "Invalid UUID Format"
	TitleFutureTimestamp = "Future Date Not Allowed"
	TitleBadRequest      = "Bad Request"
)

// kind fixes everything about a problem except the per-request parts
type kind struct {
	typ         string
	title       string
	status      int
	userMessage string
}

var (
	kindValidation      = kind{TypeValidation, TitleValidation, http.StatusBadRequest, "Please check your input and try again"}
	kindNotFound        = kind{TypeNotFound, TitleNotFound, http.StatusNotFound, ""}
	kindConflict        = kind{TypeConflict, TitleConflict, http.StatusConflict, "This action conflicts with existing data"}
	kindInternal        = kind{TypeInternal, TitleInternal, http.StatusInternalServerError, "Something went wrong. Please try again later."}
	kindUnavailable     = kind{TypeUnavailable, TitleUnavailable, http.StatusServiceUnavailable, "Service is temporarily unavailable. Please try again later."}
	kindInvalidUUID     = kind{TypeInvalidUUID, TitleInvalidUUID, http.StatusBadRequest, "Invalid identifier format"}
	kindFutureTimestamp = kind{TypeFutureTimestamp, TitleFutureTimestamp, http.StatusBadRequest, "Progress cannot be recorded for a future date"}
	kindBadRequest      = kind{TypeBadRequest, TitleBadRequest, http.StatusBadRequest, ""}
)

func (k kind) problem(requestID, detail string, errs ...FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        k.typ,
		Title:       k.title,
		Status:      k.status,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: k.userMessage,
		Errors:      errs,
	}
}
