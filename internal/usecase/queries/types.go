package queries

import "time"

// Read models (DTO for read side)
type BookingView struct {
	BookingID     int64     `json:"booking_id"`
	RoomID        string    `json:"room_id"`
	RoomType      string    `json:"room_type"`
	BookedFor     time.Time `json:"booked_for"`
	MemberID      string    `json:"member_id"`
	PaymentStatus string    `json:"payment_status"`
}

type MemberView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	PaymentDue  string    `json:"payment_due"`
	MemberSince time.Time `json:"member_since"`
}
