package commands

//go:generate mockgen -source=member.go -destination=../../../tests/mock/commands/mock_member.go -package=commandsmock

import (
	"context"
	"log/slog"
)

const (
	MsgMemberCreateAbandoned   = "Member creation cancelled or failed"
	MsgMemberCreateRejected    = "Member creation failed"
	MsgMemberEmailAbandoned    = "Email update cancelled or failed"
	MsgMemberEmailRejected     = "Email update failed"
	MsgMemberPasswordAbandoned = "Password update cancelled or failed"
	MsgMemberPasswordRejected  = "Password update failed"
	MsgMemberDeleteAbandoned   = "Member deletion cancelled or failed"
	MsgMemberDeleteRejected    = "Member deletion failed"
)

type MemberCommands interface {
	ExecuteRegistration(ctx context.Context, in MemberCollector) Outcome
	ExecuteEmailChange(ctx context.Context, in MemberCollector) Outcome
	ExecutePasswordChange(ctx context.Context, in MemberCollector) Outcome
	ExecuteDeletion(ctx context.Context, in MemberCollector) Outcome
}

type memberCommandsImpl struct {
	gateway MemberGateway
	logger  *slog.Logger
}

func NewMemberCommands(gateway MemberGateway, logger *slog.Logger) MemberCommands {
	return &memberCommandsImpl{gateway: gateway, logger: logger}
}

func (c *memberCommandsImpl) ExecuteRegistration(ctx context.Context, in MemberCollector) (outcome Outcome) {
	op := newOperation(c.logger, "member_registration")
	defer op.recover(ctx, &outcome)

	reg, err := in.CollectRegistration(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgMemberCreateAbandoned)
	}
	if !c.gateway.Create(ctx, reg) {
		return op.rejected(ctx, MsgMemberCreateRejected)
	}
	return op.done(ctx, succeeded())
}

func (c *memberCommandsImpl) ExecuteEmailChange(ctx context.Context, in MemberCollector) (outcome Outcome) {
	op := newOperation(c.logger, "member_email_change")
	defer op.recover(ctx, &outcome)

	change, err := in.CollectEmailChange(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgMemberEmailAbandoned)
	}
	if !c.gateway.UpdateEmail(ctx, change) {
		return op.rejected(ctx, MsgMemberEmailRejected)
	}
	return op.done(ctx, succeeded())
}

func (c *memberCommandsImpl) ExecutePasswordChange(ctx context.Context, in MemberCollector) (outcome Outcome) {
	op := newOperation(c.logger, "member_password_change")
	defer op.recover(ctx, &outcome)

	change, err := in.CollectPasswordChange(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgMemberPasswordAbandoned)
	}
	if !c.gateway.UpdatePassword(ctx, change) {
		return op.rejected(ctx, MsgMemberPasswordRejected)
	}
	return op.done(ctx, succeeded())
}

func (c *memberCommandsImpl) ExecuteDeletion(ctx context.Context, in MemberCollector) (outcome Outcome) {
	op := newOperation(c.logger, "member_deletion")
	defer op.recover(ctx, &outcome)

	id, err := in.CollectDeletion(ctx)
	if err != nil {
		return op.collectFailed(ctx, err, MsgMemberDeleteAbandoned)
	}
	if !c.gateway.Delete(ctx, id) {
		return op.rejected(ctx, MsgMemberDeleteRejected)
	}
	return op.done(ctx, succeeded())
}
