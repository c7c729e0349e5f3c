package response

import (
	"sportsbook/internal/usecase/queries"
)

type MemberResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	PaymentDue  string `json:"payment_due"`
	MemberSince int64  `json:"member_since"`
}

func FromMemberViews(views []*queries.MemberView) []*MemberResponse {
	res := make([]*MemberResponse, len(views))
	for i, v := range views {
		res[i] = &MemberResponse{
			ID:          v.ID,
			Email:       v.Email,
			PaymentDue:  v.PaymentDue,
			MemberSince: v.MemberSince.Unix(),
		}
	}
	return res
}
