package response

import (
	"sportsbook/internal/domain/booking"
	"sportsbook/internal/usecase/commands"
	"sportsbook/internal/usecase/queries"
)

// OperationResponse mirrors commands.Outcome for API callers.
type OperationResponse struct {
	Succeeded bool   `json:"succeeded"`
	Detail    string `json:"detail,omitempty"`
}

func FromOutcome(o commands.Outcome) *OperationResponse {
	return &OperationResponse{Succeeded: o.Succeeded, Detail: o.Detail}
}

type RoomResponse struct {
	RoomID   string `json:"room_id"`
	RoomType string `json:"room_type"`
}

type RoomSearchResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
}

func FromRooms(rooms []booking.Room) *RoomSearchResponse {
	res := make([]*RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = &RoomResponse{RoomID: r.ID, RoomType: r.Type.String()}
	}
	return &RoomSearchResponse{Rooms: res}
}

type BookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	RoomID        string `json:"room_id"`
	RoomType      string `json:"room_type"`
	BookedFor     string `json:"booked_for"`
	MemberID      string `json:"member_id"`
	PaymentStatus string `json:"payment_status"`
}

const bookedForLayout = "2006-01-02 15:04"

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = &BookingResponse{
			BookingID:     v.BookingID,
			RoomID:        v.RoomID,
			RoomType:      v.RoomType,
			BookedFor:     v.BookedFor.Format(bookedForLayout),
			MemberID:      v.MemberID,
			PaymentStatus: v.PaymentStatus,
		}
	}
	return res
}
