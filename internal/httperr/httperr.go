package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond renders err using its Kind. Storage and unknown errors are logged
// with full detail and answered with a generic body.
func Respond(c *gin.Context, log *zap.Logger, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = http.StatusText(be.Kind.Status())
		}
		Write(c, be.Kind.Status(), be.Code, msg)
		return
	}

	var se *StorageError
	if errors.As(err, &se) {
		log.Error("storage failure",
			zap.String("path", c.FullPath()),
			zap.Error(se.Cause),
		)
		Internal(c, "storage_failure", "The request could not be saved. Please try again.")
		return
	}

	log.Error("unhandled error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "internal_error", "An unexpected error occurred.")
}
