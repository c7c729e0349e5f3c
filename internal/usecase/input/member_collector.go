package input

import (
	"context"
	"fmt"

	"sportsbook/internal/domain/member"
	"sportsbook/internal/pkg/errs"
)

type MemberInputCollector struct {
	prompter Prompter
}

func NewMemberInputCollector(prompter Prompter) *MemberInputCollector {
	return &MemberInputCollector{prompter: prompter}
}

func (c *MemberInputCollector) CollectRegistration(ctx context.Context) (member.Registration, error) {
	c.prompter.Notify("=== Add New Member ===")

	id, err := c.collectID(ctx)
	if err != nil {
		return member.Registration{}, err
	}
	email, err := collect(ctx, c.prompter, Field{Key: FieldEmail, Label: "Email"}, member.NewEmail)
	if err != nil {
		return member.Registration{}, err
	}
	password, err := c.collectPassword(ctx, "Password")
	if err != nil {
		return member.Registration{}, err
	}

	c.prompter.Notify(fmt.Sprintf("New member:\n  ID: %s\n  Email: %s", id.Value(), email.Value()))
	if err := confirm(ctx, c.prompter, "Create this member? (y/n)", "Member creation cancelled"); err != nil {
		return member.Registration{}, err
	}
	return member.NewRegistration(id, email, password), nil
}

func (c *MemberInputCollector) CollectEmailChange(ctx context.Context) (member.EmailChange, error) {
	c.prompter.Notify("=== Update Member Email ===")

	id, err := c.collectID(ctx)
	if err != nil {
		return member.EmailChange{}, err
	}
	email, err := collect(ctx, c.prompter, Field{Key: FieldEmail, Label: "New email"}, member.NewEmail)
	if err != nil {
		return member.EmailChange{}, err
	}
	return member.NewEmailChange(id, email), nil
}

func (c *MemberInputCollector) CollectPasswordChange(ctx context.Context) (member.PasswordChange, error) {
	c.prompter.Notify("=== Update Member Password ===")

	id, err := c.collectID(ctx)
	if err != nil {
		return member.PasswordChange{}, err
	}
	password, err := c.collectPassword(ctx, "New password")
	if err != nil {
		return member.PasswordChange{}, err
	}
	return member.NewPasswordChange(id, password), nil
}

// CollectDeletion requires the literal confirmation word; anything else abandons.
func (c *MemberInputCollector) CollectDeletion(ctx context.Context) (member.ID, error) {
	c.prompter.Notify("=== Delete Member ===")

	id, err := c.collectID(ctx)
	if err != nil {
		return member.ID{}, err
	}

	c.prompter.Notify(fmt.Sprintf("WARNING: member %s and all of their bookings will be removed", id.Value()))
	answer, err := c.prompter.Prompt(ctx, Field{
		Key:   FieldDeleteConfirmation,
		Label: fmt.Sprintf("Type %s to confirm", member.DeleteConfirmation),
	})
	if err != nil {
		if errs.Is(err, ErrAbandoned) {
			return member.ID{}, ErrAbandoned
		}
		return member.ID{}, errs.Wrap(err, "read delete confirmation")
	}
	if answer != member.DeleteConfirmation {
		c.prompter.Notify("Member deletion cancelled")
		return member.ID{}, ErrAbandoned
	}
	return id, nil
}

func (c *MemberInputCollector) collectID(ctx context.Context) (member.ID, error) {
	return collect(ctx, c.prompter, Field{Key: FieldMemberID, Label: "Member ID"}, member.NewID)
}

// collectPassword asks for the password, then re-asks the confirmation until
// it matches.
func (c *MemberInputCollector) collectPassword(ctx context.Context, label string) (member.Password, error) {
	password, err := collect(ctx, c.prompter, Field{Key: FieldPassword, Label: label, Secret: true}, member.NewPassword)
	if err != nil {
		return member.Password{}, err
	}
	_, err = collect(ctx, c.prompter,
		Field{Key: FieldPasswordConfirm, Label: "Confirm password", Secret: true},
		func(s string) (string, error) { return s, password.Matches(s) })
	if err != nil {
		return member.Password{}, err
	}
	return password, nil
}
