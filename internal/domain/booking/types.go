package booking

import (
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidOperatingHours = errors.New("opening time must not be after closing time")

type RoomType string

const (
	RoomTypeTennisCourt       RoomType = "Tennis Court"
	RoomTypeBadmintonCourt    RoomType = "Badminton Court"
	RoomTypeArcheryRange      RoomType = "Archery Range"
	RoomTypeMultiPurposeField RoomType = "Multi-Purpose Field"
)

// RoomTypes is the catalog in menu order; choice N selects RoomTypes[N-1].
var RoomTypes = []RoomType{
	RoomTypeTennisCourt,
	RoomTypeBadmintonCourt,
	RoomTypeArcheryRange,
	RoomTypeMultiPurposeField,
}

func (r RoomType) String() string {
	return string(r)
}

func (r RoomType) IsValid() bool {
	for _, t := range RoomTypes {
		if t == r {
			return true
		}
	}
	return false
}

// RoomTypeFromChoice accepts a 1-based menu number or a catalog name (case-insensitive).
func RoomTypeFromChoice(choice string) (RoomType, bool) {
	choice = strings.TrimSpace(choice)
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(RoomTypes) {
			return RoomTypes[n-1], true
		}
		return "", false
	}
	for _, t := range RoomTypes {
		if strings.EqualFold(string(t), choice) {
			return t, true
		}
	}
	return "", false
}

// OperatingHours is the inclusive window in which bookings may start.
type OperatingHours struct {
	open  TimeOfDay
	close TimeOfDay
}

func NewOperatingHours(open, close TimeOfDay) (OperatingHours, error) {
	if open.After(close) {
		return OperatingHours{}, ErrInvalidOperatingHours
	}
	return OperatingHours{open: open, close: close}, nil
}

func ParseOperatingHours(open, close string) (OperatingHours, error) {
	o, err := ParseTimeOfDay(open)
	if err != nil {
		return OperatingHours{}, err
	}
	c, err := ParseTimeOfDay(close)
	if err != nil {
		return OperatingHours{}, err
	}
	return NewOperatingHours(o, c)
}

func DefaultOperatingHours() OperatingHours {
	return OperatingHours{open: MustTimeOfDay(6, 0), close: MustTimeOfDay(22, 0)}
}

func (h OperatingHours) Open() TimeOfDay  { return h.open }
func (h OperatingHours) Close() TimeOfDay { return h.close }

func (h OperatingHours) Contains(t TimeOfDay) bool {
	return !t.Before(h.open) && !t.After(h.close)
}
