package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends a 400 with the error message.
func Error(c *gin.Context, err error, data map[string]any) {
	if data == nil {
		data = make(map[string]any)
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
		Data:      data,
	})
}

// ValidationError sends a 400 listing every rejected field.
func ValidationError(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   MessageValidationFailed,
		Errors:    details,
	})
}

// TooManyRequests sends 429 and aborts the chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsErrorCode,
		Message:   MessageTooManyRequests,
	})
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
