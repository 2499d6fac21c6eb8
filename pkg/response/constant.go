package response

const (
	MessageSuccess          = "Success"
	MessageValidationFailed = "Validation failed"
	MessageTooManyRequests  = "Too many requests"
	DefaultErrorMessage     = "Something went wrong"

	ValidationErrorCode      = 1
	TooManyRequestsErrorCode = 429
	InternalServerErrorCode  = 500
)
