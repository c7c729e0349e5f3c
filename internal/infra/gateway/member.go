package gateway

import (
	"context"
	"log/slog"

	"sportsbook/internal/domain/member"
	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/pkg/password"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	callInsertMember         = `CALL insert_new_member($1::varchar, $2::varchar, $3::varchar, NULL::int)`
	callDeleteMember         = `CALL delete_member($1::varchar, NULL::int)`
	callUpdateMemberPassword = `CALL update_member_password($1::varchar, $2::varchar, NULL::int)`
	callUpdateMemberEmail    = `CALL update_member_email($1::varchar, $2::varchar, NULL::int)`
)

// MemberGateway calls the member procedures. Each reports how many rows it
// touched; zero means the member does not exist and the call is rolled back.
type MemberGateway struct {
	session Transactor
	hasher  password.Hasher
	logger  *slog.Logger
}

func NewMemberGateway(session Transactor, hasher password.Hasher, logger *slog.Logger) *MemberGateway {
	return &MemberGateway{session: session, hasher: hasher, logger: logger}
}

func (g *MemberGateway) Create(ctx context.Context, reg member.Registration) bool {
	hash, err := g.hasher.Hash(reg.Password().Value())
	if err != nil {
		return g.failed("insert_new_member", reg.ID(), errs.Wrap(err, "hash password"))
	}
	return g.call(ctx, "insert_new_member", reg.ID(), callInsertMember, reg.ID().Value(), hash, reg.Email().Value())
}

func (g *MemberGateway) UpdateEmail(ctx context.Context, change member.EmailChange) bool {
	return g.call(ctx, "update_member_email", change.ID(), callUpdateMemberEmail, change.ID().Value(), change.Email().Value())
}

func (g *MemberGateway) UpdatePassword(ctx context.Context, change member.PasswordChange) bool {
	hash, err := g.hasher.Hash(change.Password().Value())
	if err != nil {
		return g.failed("update_member_password", change.ID(), errs.Wrap(err, "hash password"))
	}
	return g.call(ctx, "update_member_password", change.ID(), callUpdateMemberPassword, change.ID().Value(), hash)
}

func (g *MemberGateway) Delete(ctx context.Context, id member.ID) bool {
	return g.call(ctx, "delete_member", id, callDeleteMember, id.Value())
}

func (g *MemberGateway) call(ctx context.Context, procedure string, id member.ID, sql string, args ...any) bool {
	err := g.session.Within(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var affected pgtype.Int4
		if err := tx.QueryRow(ctx, sql, args...).Scan(&affected); err != nil {
			return errs.Wrapf(err, "call %s", procedure)
		}
		if !affected.Valid || affected.Int32 == 0 {
			return errs.Mark(errs.Newf("%s touched no rows", procedure), errs.ErrMemberNotFound)
		}
		return nil
	})
	if err != nil {
		return g.failed(procedure, id, err)
	}

	g.logger.InfoContext(ctx, "member procedure committed",
		slog.String("procedure", procedure),
		slog.String("member_id", id.Value()))
	return true
}

func (g *MemberGateway) failed(procedure string, id member.ID, err error) bool {
	return reportFailure(g.logger.With(slog.String("member_id", id.Value())), procedure, err)
}
