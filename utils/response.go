package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success   bool    `json:"success"`
	Message   string  `json:"message"`
	Data      any     `json:"data"`
	Error     *string `json:"error"`
	Timestamp string  `json:"timestamp"`
}

func SendSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func SendError(c *gin.Context, status int, message string, err error) {
	var detail *string
	if err != nil {
		s := err.Error()
		detail = &s
	}
	c.JSON(status, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
