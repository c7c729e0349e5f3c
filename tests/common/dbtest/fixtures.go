//go:build unit || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"sportsbook/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DBLike is satisfied by both the fixture pool and a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Nothing checks member passwords, so every fixture member shares one hash.
var testPasswordHash = sync.OnceValues(func() (string, error) {
	return password.NewBcryptHasherWithCost(bcrypt.MinCost).Hash("password123")
})

// Mutable tables only; the room catalog comes from the migration.
const truncateSQL = "TRUNCATE bookings, members RESTART IDENTITY CASCADE"

func CreateTestMember(t *testing.T, db DBLike, id, email string) {
	t.Helper()

	hash, err := testPasswordHash()
	require.NoError(t, err)

	_, err = db.Exec(context.Background(),
		"INSERT INTO members (id, password, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING",
		id, hash, email)
	require.NoError(t, err)
}

func PaymentDue(t *testing.T, db DBLike, memberID string) string {
	t.Helper()

	var due string
	err := db.QueryRow(context.Background(), "SELECT payment_due::text FROM members WHERE id = $1", memberID).Scan(&due)
	require.NoError(t, err)
	return due
}

func CountBookings(t *testing.T, db DBLike, roomID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB removes members and bookings between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, truncateSQL)
	return err
}
