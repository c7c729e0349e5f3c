package booking

const (
	LabelBookingDate = "Booking date"
	LabelBookingTime = "Booking time"
	LabelSearchDate  = "Search date"
	LabelSearchTime  = "Search time"
	LabelMemberID    = "Member ID"
	LabelBookingID   = "Booking ID"
	LabelOwnerID     = "Member ID (owner of booking)"
)

// BookingRequest can only be obtained through NewBookingRequest, so every
// value in circulation has passed validation.
type BookingRequest struct {
	roomID      string
	date        Date
	time        TimeOfDay
	requesterID string
}

func NewBookingRequest(rules Rules, roomID, date, timeOfDay, requesterID string) (BookingRequest, error) {
	id, err := ValidateRoomID(roomID)
	if err != nil {
		return BookingRequest{}, err
	}
	d, err := rules.FutureDate(date, LabelBookingDate)
	if err != nil {
		return BookingRequest{}, err
	}
	t, err := rules.OperatingTime(timeOfDay, LabelBookingTime)
	if err != nil {
		return BookingRequest{}, err
	}
	requester, err := ValidateIdentifier(requesterID, LabelMemberID, IdentifierMinLength, IdentifierMaxLength)
	if err != nil {
		return BookingRequest{}, err
	}
	return BookingRequest{roomID: id, date: d, time: t, requesterID: requester}, nil
}

func (r BookingRequest) RoomID() string      { return r.roomID }
func (r BookingRequest) Date() Date          { return r.date }
func (r BookingRequest) Time() TimeOfDay     { return r.time }
func (r BookingRequest) RequesterID() string { return r.requesterID }

type SearchRequest struct {
	roomType RoomType
	date     Date
	time     TimeOfDay
}

func NewSearchRequest(rules Rules, roomType RoomType, date, timeOfDay string) (SearchRequest, error) {
	if !roomType.IsValid() {
		return SearchRequest{}, reject("Room type", ErrFormat, "Invalid choice. Please select 1-%d", len(RoomTypes))
	}
	d, err := rules.FutureDate(date, LabelSearchDate)
	if err != nil {
		return SearchRequest{}, err
	}
	t, err := rules.OperatingTime(timeOfDay, LabelSearchTime)
	if err != nil {
		return SearchRequest{}, err
	}
	return SearchRequest{roomType: roomType, date: d, time: t}, nil
}

func (r SearchRequest) RoomType() RoomType { return r.roomType }
func (r SearchRequest) Date() Date         { return r.date }
func (r SearchRequest) Time() TimeOfDay    { return r.time }

// CancellationRequest carries the owner so the cancel procedure can authorize it.
type CancellationRequest struct {
	bookingID int64
	ownerID   string
}

func NewCancellationRequest(bookingID, ownerID string) (CancellationRequest, error) {
	id, err := ValidateNumericID(bookingID, LabelBookingID)
	if err != nil {
		return CancellationRequest{}, err
	}
	owner, err := ValidateIdentifier(ownerID, LabelOwnerID, IdentifierMinLength, IdentifierMaxLength)
	if err != nil {
		return CancellationRequest{}, err
	}
	return CancellationRequest{bookingID: id, ownerID: owner}, nil
}

func (r CancellationRequest) BookingID() int64 { return r.bookingID }
func (r CancellationRequest) OwnerID() string  { return r.ownerID }

// Room is one row of a search result.
type Room struct {
	ID   string   `json:"room_id"`
	Type RoomType `json:"room_type"`
}
