package handlers

import (
	"fmt"

	"github.com/khasmak/api/models"
	"github.com/khasmak/api/store"
)

// DatabaseUpdate carries the owner dashboard's partial edits. Nil fields are
// left untouched. Company data merges field-wise, with each provided list
// replacing the stored one wholesale (no per-element merge).
type DatabaseUpdate struct {
	Users     *[]models.User     `json:"users,omitempty"`
	DMCData   *CompanyDataUpdate `json:"dmc_data,omitempty"`
	CurveData *CompanyDataUpdate `json:"curve_data,omitempty"`
}

type CompanyDataUpdate struct {
	Contracts   *[]string `json:"contracts,omitempty"`
	WorkItems   *[]string `json:"workItems,omitempty"`
	Contractors *[]string `json:"contractors,omitempty"`
}

// UpdateDatabase applies a partial owner edit with top-level merge
// semantics and persists the whole document.
func UpdateDatabase(st store.Store, upd DatabaseUpdate) error {
	db, err := st.Load()
	if err != nil {
		return err
	}
	if upd.Users != nil {
		db.Users = *upd.Users
	}
	applyCompanyUpdate(&db.DMCData, upd.DMCData)
	applyCompanyUpdate(&db.CurveData, upd.CurveData)
	return st.Save(db)
}

func applyCompanyUpdate(dst *models.CompanyData, upd *CompanyDataUpdate) {
	if upd == nil {
		return
	}
	if upd.Contracts != nil {
		dst.Contracts = *upd.Contracts
	}
	if upd.WorkItems != nil {
		dst.WorkItems = *upd.WorkItems
	}
	if upd.Contractors != nil {
		dst.Contractors = *upd.Contractors
	}
}

// AddUser creates a new account. Email and password are both required and
// the email must not collide with an existing account.
func AddUser(st store.Store, u models.User) error {
	if u.Email == "" || u.Password == "" {
		return fmt.Errorf("%w: email and password are required", ErrValidation)
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	db, err := st.Load()
	if err != nil {
		return err
	}
	if db.FindUser(u.Email) >= 0 {
		return fmt.Errorf("%w: an account with this email already exists", ErrValidation)
	}
	db.Users = append(db.Users, u)
	return st.Save(db)
}

// EditUser replaces the account identified by email. An empty password on
// edit keeps the stored credential.
func EditUser(st store.Store, email string, u models.User) error {
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	db, err := st.Load()
	if err != nil {
		return err
	}
	i := db.FindUser(email)
	if i < 0 {
		return ErrUserNotFound
	}
	if u.Password == "" {
		u.Password = db.Users[i].Password
	}
	if j := db.FindUser(u.Email); j >= 0 && j != i {
		return fmt.Errorf("%w: an account with this email already exists", ErrValidation)
	}
	db.Users[i] = u
	return st.Save(db)
}

// DeleteUser removes an account. Owner accounts can never be deleted.
func DeleteUser(st store.Store, email string) error {
	db, err := st.Load()
	if err != nil {
		return err
	}
	i := db.FindUser(email)
	if i < 0 {
		return ErrUserNotFound
	}
	if db.Users[i].Role == models.RoleOwner {
		return fmt.Errorf("%w: owner accounts cannot be deleted", ErrForbidden)
	}
	db.Users = append(db.Users[:i], db.Users[i+1:]...)
	return st.Save(db)
}
