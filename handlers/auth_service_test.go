package handlers

import (
	"errors"
	"testing"

	"github.com/khasmak/api/models"
)

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantValid  bool
		wantRole   models.Role
		wantForced bool
	}{
		{"correct credentials", "admin@x.com", "adminpw", true, models.RoleAdmin, false},
		{"email match is case-insensitive", "ADMIN@X.COM", "adminpw", true, models.RoleAdmin, false},
		{"password match is exact", "admin@x.com", "ADMINPW", false, "", false},
		{"wrong password", "admin@x.com", "nope", false, "", false},
		{"unknown account", "ghost@x.com", "whatever", false, "", false},
		{"default password forces a reset", "user@x.com", models.DefaultPassword, true, models.RoleUser, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t, fixtureDB())
			check, err := ValidateUser(st, tt.email, tt.password)
			if err != nil {
				t.Fatalf("ValidateUser: %v", err)
			}
			if check.Valid != tt.wantValid {
				t.Errorf("Valid = %v, expected %v", check.Valid, tt.wantValid)
			}
			if check.Role != tt.wantRole {
				t.Errorf("Role = %q, expected %q", check.Role, tt.wantRole)
			}
			if check.NeedsPasswordChange != tt.wantForced {
				t.Errorf("NeedsPasswordChange = %v, expected %v", check.NeedsPasswordChange, tt.wantForced)
			}
		})
	}
}

func TestRoleByEmail(t *testing.T) {
	st := newTestStore(t, fixtureDB())

	role, err := RoleByEmail(st, "Owner@X.com")
	if err != nil {
		t.Fatal(err)
	}
	if role != models.RoleOwner {
		t.Errorf("RoleByEmail = %q, expected owner", role)
	}

	role, err = RoleByEmail(st, "ghost@x.com")
	if err != nil {
		t.Fatal(err)
	}
	if role != "" {
		t.Errorf("RoleByEmail for unknown account = %q, expected empty", role)
	}

	role, err = RoleByEmail(st, "")
	if err != nil || role != "" {
		t.Errorf("RoleByEmail(\"\") = %q, %v, expected empty with no error", role, err)
	}
}

func TestChangeUserPassword(t *testing.T) {
	st := newTestStore(t, fixtureDB())

	if err := ChangeUserPassword(st, "user@x.com", "fresh-secret"); err != nil {
		t.Fatalf("ChangeUserPassword: %v", err)
	}

	// old credential no longer works
	check, err := ValidateUser(st, "user@x.com", models.DefaultPassword)
	if err != nil {
		t.Fatal(err)
	}
	if check.Valid {
		t.Error("old credential still accepted after the change")
	}

	// new credential works, and the forced reset is cleared
	check, err = ValidateUser(st, "user@x.com", "fresh-secret")
	if err != nil {
		t.Fatal(err)
	}
	if !check.Valid {
		t.Error("new credential rejected")
	}
	if check.NeedsPasswordChange {
		t.Error("NeedsPasswordChange still set after leaving the default password")
	}
}

func TestChangeUserPasswordFailures(t *testing.T) {
	st := newTestStore(t, fixtureDB())

	if err := ChangeUserPassword(st, "ghost@x.com", "pw"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown account = %v, expected ErrUserNotFound", err)
	}
	if err := ChangeUserPassword(st, "user@x.com", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty new password = %v, expected ErrValidation", err)
	}
	if err := ChangeUserPassword(st, "", "pw"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty email = %v, expected ErrValidation", err)
	}
}
