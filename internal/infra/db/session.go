package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sportsbook/internal/pkg/config"
	"sportsbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/semaphore"
)

const rollbackTimeout = 5 * time.Second

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

// Conn is the subset of *pgx.Conn the session needs.
type Conn interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	IsClosed() bool
}

type Dialer func(ctx context.Context) (Conn, error)

// Session owns a single database connection. Only one transaction runs on it
// at a time; callers queue on a weight-1 semaphore that honors cancellation.
type Session struct {
	sem    *semaphore.Weighted
	dial   Dialer
	logger *slog.Logger

	// guarded by sem
	conn   Conn
	closed bool
}

func NewSession(ctx context.Context, dial Dialer, logger *slog.Logger) (*Session, error) {
	conn, err := dial(ctx)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to connect to database"), errs.ErrSessionUnavailable)
	}
	return &Session{
		sem:    semaphore.NewWeighted(1),
		dial:   dial,
		logger: logger,
		conn:   conn,
	}, nil
}

func Connect(ctx context.Context, cfg config.DBConfig, logger *slog.Logger) (*Session, error) {
	dsn := cfg.BuildDSN()
	dial := func(ctx context.Context) (Conn, error) {
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	session, err := NewSession(ctx, dial, logger)
	if err != nil {
		return nil, err
	}
	if err := session.Ping(ctx); err != nil {
		_ = session.Close(context.Background())
		return nil, errs.Wrap(err, "failed to ping database")
	}
	return session, nil
}

func (s *Session) acquire(ctx context.Context) (Conn, func(), error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, nil, err
	}
	release := func() { s.sem.Release(1) }

	if s.closed {
		release()
		return nil, nil, errs.ErrSessionClosed
	}

	if s.conn == nil || s.conn.IsClosed() {
		s.logger.Warn("database connection lost, reconnecting")
		conn, err := s.dial(ctx)
		if err != nil {
			s.conn = nil
			release()
			return nil, nil, errs.Mark(errs.Wrap(err, "failed to reconnect"), errs.ErrSessionUnavailable)
		}
		s.conn = conn
	}
	return s.conn, release, nil
}

// Within runs fn in a read-committed transaction. The transaction commits only
// when fn returns nil; any error or panic rolls it back before the session is
// handed to the next caller.
func (s *Session) Within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) (err error) {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if p := recover(); p != nil {
			s.rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		s.rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		s.rollback(ctx, tx)
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// Snapshot runs fn in a read-only transaction that is always rolled back.
func (s *Session) Snapshot(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer s.rollback(ctx, tx)

	return fn(ctx, tx)
}

// rollback must still reach the server when the caller's context is already done.
func (s *Session) rollback(ctx context.Context, tx pgx.Tx) {
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	if err := tx.Rollback(rbCtx); err != nil {
		if !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Warn("rollback failed", "error", err.Error())
		}
		return
	}
	s.logger.Debug("transaction rolled back")
}

func (s *Session) Ping(ctx context.Context) error {
	conn, release, err := s.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return conn.Ping(ctx)
}

// Close waits for the in-flight transaction, then closes the connection.
// Later calls fail with errs.ErrSessionClosed.
func (s *Session) Close(ctx context.Context) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer s.sem.Release(1)

	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil || s.conn.IsClosed() {
		return nil
	}
	return s.conn.Close(ctx)
}
