package response

// Resp is the standard JSON envelope for non-conversational responses.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// FieldError describes one rejected field of an inbound payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
