package infra

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"

	"sportsbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	level := slog.LevelError
	if kind == KindProcedureRejected || kind == KindNotFound {
		level = slog.LevelWarn
	}
	slogger.Log(context.Background(), level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound          RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure         RepositoryErrorKind = "DB_FAILURE"
	KindConnectionLost    RepositoryErrorKind = "CONNECTION_LOST"
	KindTimeout           RepositoryErrorKind = "TIMEOUT"
	KindProcedureRejected RepositoryErrorKind = "PROCEDURE_REJECTED"
)

// SQLSTATE class 08 is "connection exception"; 57P01-57P03 are server shutdown codes.
const (
	pgClassConnectionException = "08"
	pgAdminShutdown            = "57P01"
	pgCrashShutdown            = "57P02"
	pgCannotConnectNow         = "57P03"
	pgQueryCanceled            = "57014"
)

// Classify maps a low-level failure onto a RepositoryErrorKind.
func Classify(err error) RepositoryErrorKind {
	switch {
	case err == nil:
		return ""
	case errs.Is(err, errs.ErrProcedureRejected):
		return KindProcedureRejected
	case errs.Is(err, errs.ErrMemberNotFound), errors.Is(err, pgx.ErrNoRows):
		return KindNotFound
	case errs.Is(err, errs.ErrSessionClosed):
		return KindConnectionLost
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), pgconn.Timeout(err):
		return KindTimeout
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, pgClassConnectionException),
			pgErr.Code == pgAdminShutdown, pgErr.Code == pgCrashShutdown, pgErr.Code == pgCannotConnectNow:
			return KindConnectionLost
		case pgErr.Code == pgQueryCanceled:
			return KindTimeout
		default:
			return KindDBFailure
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, net.ErrClosed) {
		return KindConnectionLost
	}
	return KindDBFailure
}
