// Package apierror renders API failures as RFC 9457 Problem Details
// (https://www.rfc-editor.org/rfc/rfc9457.html) with habithub extensions.
package apierror

// ProblemDetails is the body of every non-2xx API response
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`

	// RequestID echoes X-Request-ID so clients can quote it in reports
	RequestID string `json:"request_id,omitempty"`
	// UserMessage is safe to show in the UI as-is
	UserMessage string `json:"user_message,omitempty"`
	// RetryAfter is also sent as the Retry-After header
	RetryAfter *int         `json:"retry_after,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// FieldError pins a validation failure to one request field. Field uses
// the JSON name, with an index for list members (items[2].title).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func (p *ProblemDetails) Error() string {
	if p.Detail == "" {
		return p.Title
	}
	return p.Detail
}
