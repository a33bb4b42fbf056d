package apperrors

import (
	"errors"
	"fmt"
)

// Sentinel errors supaya handler bisa mapping ke HTTP code pakai errors.Is
var (
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTooEarly          = errors.New("appointment date has not passed yet")
	ErrAuth              = errors.New("authentication failed")
)

// Reason code untuk validasi jadwal, dikirim balik ke frontend apa adanya
const (
	ReasonClosedDay  = "closed_day"
	ReasonOutOfHours = "out_of_hours"
	ReasonConflict   = "conflict"
	ReasonBadInput   = "bad_input"
)

// ValidationError = input ditolak sebelum nyentuh database
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// AsValidation helper untuk ambil reason code dari error chain
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
