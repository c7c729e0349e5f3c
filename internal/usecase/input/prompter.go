package input

import (
	"context"
	"errors"
)

// ErrAbandoned means the person supplying input chose to stop. It is a normal
// outcome of collection, not a failure.
var ErrAbandoned = errors.New("input abandoned")

const (
	FieldRoomID             = "room_id"
	FieldRoomType           = "room_type"
	FieldDate               = "date"
	FieldTime               = "time"
	FieldMemberID           = "member_id"
	FieldBookingID          = "booking_id"
	FieldOwnerID            = "owner_id"
	FieldConfirm            = "confirm"
	FieldEmail              = "email"
	FieldPassword           = "password"
	FieldPasswordConfirm    = "password_confirmation"
	FieldDeleteConfirmation = "delete_confirmation"
)

// Field identifies one question. Key is stable for non-interactive sources,
// Label is what an interactive source shows.
type Field struct {
	Key    string
	Label  string
	Secret bool
}

// Prompter is an input source. Prompt returns ErrAbandoned when the user
// gives up; Notify reports feedback such as a rejected value.
type Prompter interface {
	Prompt(ctx context.Context, field Field) (string, error)
	Notify(message string)
}
