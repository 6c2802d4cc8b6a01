package errors

// ErrorInfo is the error payload inside the response envelope.
type ErrorInfo struct {
	Code    string `json:"code"`              // stable business code, e.g. "TIER_RESTRICTED"
	Message string `json:"message"`           // human-readable summary
	Details any    `json:"details,omitempty"` // field-level validation details and the like
}

// MetaInfo carries the correlation ID so clients can quote it in support requests.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse is the envelope for 2xx responses.
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope for error responses.
type ErrorResponse struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error"`
	Meta    *MetaInfo  `json:"meta"`
}
