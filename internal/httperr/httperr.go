package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code       string   `json:"error_code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness maps a tagged business error to its HTTP status.
// Anything that is not a BusinessError is a persistence or
// programming failure and surfaces as 500.
func WriteBusiness(c *gin.Context, err error) {
	be, ok := AsBusiness(err)
	if !ok {
		Write(c, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	status := http.StatusInternalServerError
	switch be.Kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindValidation, KindConflict:
		status = http.StatusBadRequest
	}

	c.JSON(status, HTTPError{
		Code:       be.Code,
		Message:    be.Message,
		Violations: be.Violations,
	})
}
