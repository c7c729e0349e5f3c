package commands

import (
	"context"
	"fmt"
	"log/slog"

	"sportsbook/internal/domain/booking"
	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/usecase/input"

	"github.com/google/uuid"
)

type FailureKind string

const (
	FailureNone FailureKind = ""
	// the user stopped before anything was sent
	FailureAbandoned FailureKind = "ABANDONED"
	// the system answered with a negative result
	FailureRejected FailureKind = "REJECTED"
	// an error or panic interrupted the operation
	FailureUnexpected FailureKind = "UNEXPECTED"
)

// Outcome is the only thing an Execute method hands back. Detail is empty on
// success; Rooms is only filled by a successful search.
type Outcome struct {
	Succeeded bool
	Detail    string
	Failure   FailureKind
	Rooms     []booking.Room
}

func succeeded() Outcome {
	return Outcome{Succeeded: true}
}

func failed(kind FailureKind, detail string) Outcome {
	return Outcome{Succeeded: false, Failure: kind, Detail: detail}
}

// operation tracks a single Execute call for logging.
type operation struct {
	id     string
	name   string
	logger *slog.Logger
}

func newOperation(logger *slog.Logger, name string) *operation {
	id := uuid.NewString()
	return &operation{
		id:     id,
		name:   name,
		logger: logger.With(slog.String("operation", name), slog.String("operation_id", id)),
	}
}

// collectFailed turns a collector error into an outcome. Abandonment gets the
// fixed message, anything else is reported verbatim.
func (o *operation) collectFailed(ctx context.Context, err error, abandonedMsg string) Outcome {
	if errs.Is(err, input.ErrAbandoned) {
		o.logger.InfoContext(ctx, "operation abandoned during input")
		return failed(FailureAbandoned, abandonedMsg)
	}
	o.logger.ErrorContext(ctx, "input collection failed",
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, 6)))
	return failed(FailureUnexpected, err.Error())
}

func (o *operation) rejected(ctx context.Context, detail string) Outcome {
	o.logger.WarnContext(ctx, "operation rejected", slog.String("detail", detail))
	return failed(FailureRejected, detail)
}

func (o *operation) done(ctx context.Context, outcome Outcome) Outcome {
	o.logger.InfoContext(ctx, "operation completed", slog.Int("rooms", len(outcome.Rooms)))
	return outcome
}

// recover converts a panic into an Unexpected outcome. It must be deferred
// directly by the Execute method.
func (o *operation) recover(ctx context.Context, out *Outcome) {
	r := recover()
	if r == nil {
		return
	}
	detail := fmt.Sprint(r)
	if err, ok := r.(error); ok {
		detail = err.Error()
	}
	o.logger.ErrorContext(ctx, "operation panicked", slog.String("panic", detail))
	*out = failed(FailureUnexpected, detail)
}
