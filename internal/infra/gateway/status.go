package gateway

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ProcedureStatus is the closed set of outcomes a stored procedure can report.
// Raw status strings are converted at the gateway boundary and never leave it.
type ProcedureStatus int

const (
	StatusUnknown ProcedureStatus = iota
	StatusSuccess
	StatusFailure
)

func (s ProcedureStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// StatusParser maps raw status tokens onto ProcedureStatus.
type StatusParser struct {
	successToken string
}

func NewStatusParser(successToken string) StatusParser {
	if successToken == "" {
		successToken = DefaultSuccessToken
	}
	return StatusParser{successToken: successToken}
}

const DefaultSuccessToken = "SUCCESS"

// Parse treats a NULL or blank status as unknown and any other non-success
// token as failure.
func (p StatusParser) Parse(raw pgtype.Text) ProcedureStatus {
	if !raw.Valid {
		return StatusUnknown
	}
	s := strings.TrimSpace(raw.String)
	switch {
	case s == "":
		return StatusUnknown
	case s == p.successToken:
		return StatusSuccess
	default:
		return StatusFailure
	}
}
