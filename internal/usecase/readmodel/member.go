package readmodel

import "time"

type MemberRM struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	PaymentDue  string    `json:"payment_due"`
	MemberSince time.Time `json:"member_since"`
}
