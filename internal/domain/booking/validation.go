package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"sportsbook/internal/pkg/clock"
)

const (
	RoomIDMinLength     = 1
	RoomIDMaxLength     = 10
	IdentifierMinLength = 3
	IdentifierMaxLength = 50
)

var (
	ErrEmptyField            = errors.New("empty field")
	ErrLengthOutOfRange      = errors.New("length out of range")
	ErrFormat                = errors.New("invalid format")
	ErrNotInFuture           = errors.New("date not in the future")
	ErrOutsideOperatingHours = errors.New("time outside operating hours")
	ErrNotNumeric            = errors.New("not numeric")
)

// FieldError is a rejected raw input. Message is meant for the person typing;
// the wrapped reason is one of the sentinels above.
type FieldError struct {
	Field   string
	Message string
	reason  error
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Unwrap() error {
	return e.reason
}

func reject(field string, reason error, format string, args ...any) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...), reason: reason}
}

// ValidateRoomID trims and upper-cases the input; the result is 1-10 characters.
func ValidateRoomID(raw string) (string, error) {
	const field = "Room ID"
	id := strings.ToUpper(strings.TrimSpace(raw))
	if id == "" {
		return "", reject(field, ErrEmptyField, "%s cannot be empty", field)
	}
	if n := utf8.RuneCountInString(id); n < RoomIDMinLength || n > RoomIDMaxLength {
		return "", reject(field, ErrLengthOutOfRange, "%s must be %d-%d characters", field, RoomIDMinLength, RoomIDMaxLength)
	}
	return id, nil
}

// ValidateFutureDate accepts YYYY-MM-DD strictly after today.
func ValidateFutureDate(raw, label string, today Date) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, reject(label, ErrEmptyField, "%s cannot be empty", label)
	}
	d, err := parseDate(s)
	if err != nil {
		return Date{}, reject(label, ErrFormat, "Invalid date format. Please use YYYY-MM-DD")
	}
	if !d.After(today) {
		return Date{}, reject(label, ErrNotInFuture, "%s must be in the future", label)
	}
	return d, nil
}

// ValidateOperatingHoursTime accepts HH:MM inside hours, both ends inclusive.
func ValidateOperatingHoursTime(raw, label string, hours OperatingHours) (TimeOfDay, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return TimeOfDay{}, reject(label, ErrEmptyField, "%s cannot be empty", label)
	}
	t, err := ParseTimeOfDay(s)
	if err != nil {
		return TimeOfDay{}, reject(label, ErrFormat, "Invalid time format. Please use HH:MM")
	}
	if !hours.Contains(t) {
		return TimeOfDay{}, reject(label, ErrOutsideOperatingHours,
			"%s must be between %s and %s", label, hours.Open(), hours.Close())
	}
	return t, nil
}

// ValidateIdentifier trims the input and checks its length against [minLen, maxLen].
func ValidateIdentifier(raw, label string, minLen, maxLen int) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", reject(label, ErrEmptyField, "%s cannot be empty", label)
	}
	n := utf8.RuneCountInString(s)
	if n < minLen {
		return "", reject(label, ErrLengthOutOfRange, "%s must be at least %d characters", label, minLen)
	}
	if n > maxLen {
		return "", reject(label, ErrLengthOutOfRange, "%s must be at most %d characters", label, maxLen)
	}
	return s, nil
}

// ValidateNumericID accepts ASCII digits only and yields a positive integer.
func ValidateNumericID(raw, label string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, reject(label, ErrEmptyField, "%s cannot be empty", label)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, reject(label, ErrNotNumeric, "%s must be a number", label)
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, reject(label, ErrNotNumeric, "%s must be a positive number", label)
	}
	return id, nil
}

// Rules binds the date and time validators to the facility calendar.
type Rules struct {
	clock clock.Clock
	hours OperatingHours
}

func NewRules(c clock.Clock, hours OperatingHours) Rules {
	return Rules{clock: c, hours: hours}
}

func (r Rules) Today() Date {
	return DateOf(r.clock.Now())
}

func (r Rules) Hours() OperatingHours {
	return r.hours
}

func (r Rules) FutureDate(raw, label string) (Date, error) {
	return ValidateFutureDate(raw, label, r.Today())
}

func (r Rules) OperatingTime(raw, label string) (TimeOfDay, error) {
	return ValidateOperatingHoursTime(raw, label, r.hours)
}
