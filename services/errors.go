package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Failure categories surfaced by the service layer. Controllers map
// them onto HTTP statuses; anything unwrapped is an internal error.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// duplicateKey reports whether err is a unique-constraint violation.
// Not every driver implements gorm's error translation, so the message
// text is checked as well.
func duplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
