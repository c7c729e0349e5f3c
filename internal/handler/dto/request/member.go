package request

import (
	"sportsbook/internal/usecase/input"
)

type CreateMemberRequest struct {
	ID                   string `json:"id" example:"alice"`
	Email                string `json:"email" example:"alice@example.com"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (r *CreateMemberRequest) ToForm() map[string]string {
	return map[string]string{
		input.FieldMemberID:        r.ID,
		input.FieldEmail:           r.Email,
		input.FieldPassword:        r.Password,
		input.FieldPasswordConfirm: r.PasswordConfirmation,
		input.FieldConfirm:         "y",
	}
}

type UpdateEmailRequest struct {
	Email string `json:"email" example:"alice@example.org"`
}

func (r *UpdateEmailRequest) ToForm(memberID string) map[string]string {
	return map[string]string{
		input.FieldMemberID: memberID,
		input.FieldEmail:    r.Email,
	}
}

type UpdatePasswordRequest struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

func (r *UpdatePasswordRequest) ToForm(memberID string) map[string]string {
	return map[string]string{
		input.FieldMemberID:        memberID,
		input.FieldPassword:        r.Password,
		input.FieldPasswordConfirm: r.PasswordConfirmation,
	}
}

// DeleteMemberQuery carries the confirmation word; anything but DELETE abandons.
type DeleteMemberQuery struct {
	Confirm string `form:"confirm" example:"DELETE"`
}

func (q *DeleteMemberQuery) ToForm(memberID string) map[string]string {
	return map[string]string{
		input.FieldMemberID:           memberID,
		input.FieldDeleteConfirmation: q.Confirm,
	}
}
