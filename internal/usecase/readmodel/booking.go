package readmodel

import "time"

type BookingRM struct {
	BookingID     int64     `json:"booking_id"`
	RoomID        string    `json:"room_id"`
	RoomType      string    `json:"room_type"`
	BookedFor     time.Time `json:"booked_for"`
	MemberID      string    `json:"member_id"`
	PaymentStatus string    `json:"payment_status"`
}
