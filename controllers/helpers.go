package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

// statusFor maps service failures onto the HTTP error taxonomy.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, err error, message string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		// internal details stay out of the response body
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.SendError(c, status, message, nil)
		return
	}
	utils.SendError(c, status, message, err)
}

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.SendError(c, http.StatusBadRequest, "invalid id", err)
		return 0, false
	}
	return uint(id), true
}

// parseDateQuery accepts either a plain date or a full RFC 3339
// timestamp. Plain end dates are extended to the end of the day.
func parseDateQuery(value string, endOfDay bool, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, loc); err == nil {
		if endOfDay {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
