package readstore

import (
	"context"
	"log/slog"

	"sportsbook/internal/infra"
	"sportsbook/internal/pkg/pgconv"
	"sportsbook/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// Password hashes are deliberately not selected.
const selectMembers = `
SELECT id, email, payment_due::text, member_since
FROM members
ORDER BY id`

type MemberReadStore struct {
	session Snapshotter
	logger  *slog.Logger
}

func NewMemberReadStore(session Snapshotter, logger *slog.Logger) *MemberReadStore {
	return &MemberReadStore{session: session, logger: logger}
}

func (r *MemberReadStore) FindAll(ctx context.Context) ([]*readmodel.MemberRM, error) {
	var members []*readmodel.MemberRM
	err := r.session.Snapshot(ctx, func(ctx context.Context, tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectMembers)
		if err != nil {
			return err
		}
		members, err = pgx.CollectRows(rows, scanMember)
		return err
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.Classify(err), "failed to list members", err)
	}
	return members, nil
}

func scanMember(row pgx.CollectableRow) (*readmodel.MemberRM, error) {
	var (
		id          string
		email       pgtype.Text
		paymentDue  pgtype.Text
		memberSince pgtype.Timestamp
	)
	if err := row.Scan(&id, &email, &paymentDue, &memberSince); err != nil {
		return nil, err
	}
	return &readmodel.MemberRM{
		ID:          id,
		Email:       pgconv.StringFromPgtype(email),
		PaymentDue:  pgconv.StringFromPgtype(paymentDue),
		MemberSince: pgconv.TimeFromPgtype(memberSince),
	}, nil
}
