package member

// Registration is a new account before it is handed to insert_new_member.
type Registration struct {
	id       ID
	email    Email
	password Password
}

func NewRegistration(id ID, email Email, password Password) Registration {
	return Registration{id: id, email: email, password: password}
}

func (r Registration) ID() ID             { return r.id }
func (r Registration) Email() Email       { return r.email }
func (r Registration) Password() Password { return r.password }

type EmailChange struct {
	id    ID
	email Email
}

func NewEmailChange(id ID, email Email) EmailChange {
	return EmailChange{id: id, email: email}
}

func (c EmailChange) ID() ID       { return c.id }
func (c EmailChange) Email() Email { return c.email }

type PasswordChange struct {
	id       ID
	password Password
}

func NewPasswordChange(id ID, password Password) PasswordChange {
	return PasswordChange{id: id, password: password}
}

func (c PasswordChange) ID() ID             { return c.id }
func (c PasswordChange) Password() Password { return c.password }
