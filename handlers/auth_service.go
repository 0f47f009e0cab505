package handlers

import (
	"fmt"

	"github.com/khasmak/api/models"
	"github.com/khasmak/api/store"
)

// CredentialCheck is the outcome of a login attempt.
type CredentialCheck struct {
	Valid               bool
	Role                models.Role
	NeedsPasswordChange bool
}

// ValidateUser matches the email case-insensitively and the credential by
// exact string against the stored document. The forced-reset flag is set
// when the account is still on the provisioning default.
func ValidateUser(st store.Store, email, password string) (CredentialCheck, error) {
	db, err := st.Load()
	if err != nil {
		return CredentialCheck{}, err
	}
	for _, u := range db.Users {
		if u.EmailEquals(email) && u.Password == password {
			return CredentialCheck{
				Valid:               true,
				Role:                u.Role,
				NeedsPasswordChange: u.OnDefaultPassword(),
			}, nil
		}
	}
	return CredentialCheck{}, nil
}

// RoleByEmail returns the role for an account, or "" when no account
// matches. Display hint only; enforcement happens in the middleware.
func RoleByEmail(st store.Store, email string) (models.Role, error) {
	if email == "" {
		return "", nil
	}
	db, err := st.Load()
	if err != nil {
		return "", err
	}
	if i := db.FindUser(email); i >= 0 {
		return db.Users[i].Role, nil
	}
	return "", nil
}

// ChangeUserPassword overwrites the stored credential unconditionally and
// persists. There is no old-password check; subsequent logins with the old
// credential fail.
func ChangeUserPassword(st store.Store, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return fmt.Errorf("%w: email and new password are required", ErrValidation)
	}
	db, err := st.Load()
	if err != nil {
		return err
	}
	i := db.FindUser(email)
	if i < 0 {
		return ErrUserNotFound
	}
	db.Users[i].Password = newPassword
	return st.Save(db)
}
