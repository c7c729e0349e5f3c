package request

import (
	"sportsbook/internal/usecase/input"
)

// Fields are validated by the booking collector, not by binding tags, so the
// caller gets the same messages an interactive user would.
type CreateBookingRequest struct {
	RoomID   string `json:"room_id" example:"T1"`
	Date     string `json:"date" example:"2025-06-20"`
	Time     string `json:"time" example:"14:00"`
	MemberID string `json:"member_id" example:"alice"`
}

func (r *CreateBookingRequest) ToForm() map[string]string {
	return map[string]string{
		input.FieldRoomID:   r.RoomID,
		input.FieldDate:     r.Date,
		input.FieldTime:     r.Time,
		input.FieldMemberID: r.MemberID,
		input.FieldConfirm:  "y",
	}
}

type SearchRoomsQuery struct {
	RoomType string `form:"room_type" example:"Tennis Court"`
	Date     string `form:"date" example:"2025-06-20"`
	Time     string `form:"time" example:"14:00"`
}

func (q *SearchRoomsQuery) ToForm() map[string]string {
	return map[string]string{
		input.FieldRoomType: q.RoomType,
		input.FieldDate:     q.Date,
		input.FieldTime:     q.Time,
	}
}

type CancelBookingRequest struct {
	MemberID string `json:"member_id" example:"alice"`
}

func (r *CancelBookingRequest) ToForm(bookingID string) map[string]string {
	return map[string]string{
		input.FieldBookingID: bookingID,
		input.FieldOwnerID:   r.MemberID,
		input.FieldConfirm:   "y",
	}
}
