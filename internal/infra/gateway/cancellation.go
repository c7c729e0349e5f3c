package gateway

import "strings"

// CancellationPredicate decides from the cancel procedure's message whether
// the booking was actually cancelled. cancel_booking reports no status column,
// so this is the only place that interprets its prose.
type CancellationPredicate func(message string) bool

// MessageIndicatesCancellation accepts a message that mentions "cancelled"
// and does not mention "error", case-insensitively.
// TODO: drop once cancel_booking returns a status column like make_booking does.
func MessageIndicatesCancellation(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "cancelled") && !strings.Contains(m, "error")
}
