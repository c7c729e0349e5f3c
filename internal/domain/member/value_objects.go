package member

import (
	"errors"
	"regexp"
	"strings"

	"sportsbook/internal/domain/booking"
)

const (
	PasswordMinLength  = 6
	PasswordMaxBytes   = 72 // bcrypt ignores anything past 72 bytes
	DeleteConfirmation = "DELETE"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrPasswordTooWeak  = errors.New("password must be at least 6 characters long")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes long")
	ErrPasswordBlank    = errors.New("password cannot be only whitespace")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type ID struct {
	value string
}

// NewID applies the same identifier rule bookings use for requester ids.
func NewID(s string) (ID, error) {
	v, err := booking.ValidateIdentifier(s, booking.LabelMemberID, booking.IdentifierMinLength, booking.IdentifierMaxLength)
	if err != nil {
		return ID{}, err
	}
	return ID{value: v}, nil
}

func (id ID) Value() string {
	return id.value
}

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if strings.TrimSpace(s) == "" && s != "" {
		return Password{}, ErrPasswordBlank
	}
	if len([]rune(s)) < PasswordMinLength {
		return Password{}, ErrPasswordTooWeak
	}
	if len(s) > PasswordMaxBytes {
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

// Matches compares a confirmation entry against the password.
func (p Password) Matches(confirmation string) error {
	if p.value != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}
