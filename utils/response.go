package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

func SendError(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, APIResponse{
		Status:  StatusError,
		Message: message,
		Errors:  []string{message},
	})
}

func SendValidationError(c *gin.Context, errs ...string) {
	message := "Validation error"
	if len(errs) > 0 {
		message = errs[0]
	}
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:  StatusError,
		Message: message,
		Errors:  errs,
	})
}
