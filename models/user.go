// models/user.go
package models

import "strings"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
	RoleOwner Role = "owner"
)

// DefaultPassword is the sentinel credential accounts are provisioned with.
// A successful login against it forces a password change.
const DefaultPassword = "123456"

// User is an account record as stored in the document. The password field
// keeps its historical JSON name and holds the literal credential; see
// DESIGN.md for why this is not hashed here.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password_hashed"`
	Role     Role   `json:"role"`
}

// EmailEquals compares account emails the way the application always has:
// case-insensitively.
func (u User) EmailEquals(email string) bool {
	return strings.EqualFold(u.Email, email)
}

// OnDefaultPassword reports whether the account still carries the
// provisioning credential.
func (u User) OnDefaultPassword() bool {
	return u.Password == DefaultPassword
}
