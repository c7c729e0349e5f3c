package errs

import "errors"

// Sentinels shared across layers; infrastructure marks its failures with these
// so callers can branch with errors.Is instead of inspecting messages.
var (
	// Session errors
	ErrSessionClosed      = errors.New("database session closed")
	ErrSessionUnavailable = errors.New("database session unavailable")

	// Procedure errors
	ErrProcedureRejected = errors.New("stored procedure rejected the request")
	ErrMemberNotFound    = errors.New("member not found")
)
