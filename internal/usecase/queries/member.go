package queries

//go:generate mockgen -source=member.go -destination=../../../tests/mock/queries/mock_member.go -package=queriesmock

import (
	"context"

	"sportsbook/internal/pkg/errs"
	"sportsbook/internal/usecase/readmodel"
)

var ErrMembersUnavailable = errs.New("members unavailable")

type MemberQueries interface {
	ListMembers(ctx context.Context) ([]*MemberView, error)
}

type MemberReadStore interface {
	FindAll(ctx context.Context) ([]*readmodel.MemberRM, error)
}

type memberQueriesImpl struct {
	readStore MemberReadStore
}

func NewMemberQueries(readStore MemberReadStore) MemberQueries {
	return &memberQueriesImpl{readStore: readStore}
}

func (q *memberQueriesImpl) ListMembers(ctx context.Context) ([]*MemberView, error) {
	rms, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrMembersUnavailable)
	}
	return toViews[readmodel.MemberRM, MemberView](rms)
}
