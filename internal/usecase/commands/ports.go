package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

import (
	"context"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/domain/member"
)

// BookingCollector supplies validated requests. Every method returns
// input.ErrAbandoned when the user gives up.
type BookingCollector interface {
	CollectBookingRequest(ctx context.Context) (booking.BookingRequest, error)
	CollectSearchRequest(ctx context.Context) (booking.SearchRequest, error)
	CollectCancellationRequest(ctx context.Context) (booking.CancellationRequest, error)
}

// ReservationGateway reports every failure as a negative result; a false
// from Book or Cancel means nothing was committed.
type ReservationGateway interface {
	Book(ctx context.Context, req booking.BookingRequest) bool
	Search(ctx context.Context, req booking.SearchRequest) []booking.Room
	Cancel(ctx context.Context, req booking.CancellationRequest) bool
}

type MemberCollector interface {
	CollectRegistration(ctx context.Context) (member.Registration, error)
	CollectEmailChange(ctx context.Context) (member.EmailChange, error)
	CollectPasswordChange(ctx context.Context) (member.PasswordChange, error)
	CollectDeletion(ctx context.Context) (member.ID, error)
}

// MemberGateway follows the same contract as ReservationGateway.
type MemberGateway interface {
	Create(ctx context.Context, reg member.Registration) bool
	UpdateEmail(ctx context.Context, change member.EmailChange) bool
	UpdatePassword(ctx context.Context, change member.PasswordChange) bool
	Delete(ctx context.Context, id member.ID) bool
}
