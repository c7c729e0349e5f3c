package pgconv

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsecondsPerMinute = int64(time.Minute / time.Microsecond)

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	return &pi.Int64
}

func TimeFromPgtype(pt pgtype.Timestamp) time.Time {
	return pt.Time
}

// DateToPgtype takes a calendar day; only year, month and day are sent.
func DateToPgtype(year int, month time.Month, day int) pgtype.Date {
	return pgtype.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func TimeOfDayToPgtype(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(hour*60+minute) * microsecondsPerMinute, Valid: true}
}
