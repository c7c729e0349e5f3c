//go:build unit

package infra

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"

	"sportsbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{name: "procedure rejection", err: errs.Mark(errs.New("room taken"), errs.ErrProcedureRejected), want: KindProcedureRejected},
		{name: "missing member", err: errs.Mark(errs.New("no rows touched"), errs.ErrMemberNotFound), want: KindNotFound},
		{name: "no rows", err: errs.Wrap(pgx.ErrNoRows, "scan"), want: KindNotFound},
		{name: "closed session", err: errs.ErrSessionClosed, want: KindConnectionLost},
		{name: "deadline", err: errs.Wrap(context.DeadlineExceeded, "call"), want: KindTimeout},
		{name: "query canceled", err: &pgconn.PgError{Code: "57014"}, want: KindTimeout},
		{name: "connection exception class", err: &pgconn.PgError{Code: "08006"}, want: KindConnectionLost},
		{name: "admin shutdown", err: &pgconn.PgError{Code: "57P01"}, want: KindConnectionLost},
		{name: "undefined function", err: &pgconn.PgError{Code: "42883"}, want: KindDBFailure},
		{name: "eof", err: io.ErrUnexpectedEOF, want: KindConnectionLost},
		{name: "net closed", err: errs.Wrap(net.ErrClosed, "read"), want: KindConnectionLost},
		{name: "anything else", err: errors.New("boom"), want: KindDBFailure},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := errors.New("connection reset")

	err := WrapRepoErr(logger, KindConnectionLost, "make_booking rolled back", cause)

	assert.True(t, IsKind(err, KindConnectionLost))
	assert.False(t, IsKind(err, KindDBFailure))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CONNECTION_LOST: make_booking rolled back")
}
