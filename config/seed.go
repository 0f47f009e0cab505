package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/khasmak/api/models"
	"github.com/khasmak/api/store"
)

// SeedOwnerEmail is the account created on first boot. It starts on the
// default credential, so the first login forces a password change.
const SeedOwnerEmail = "owner@khasmak.app"

// Seed creates a starter document when none exists yet: one owner account
// and empty reference lists. An existing file is never touched.
func Seed(fs *store.FileStore) error {
	if _, err := os.Stat(fs.Path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	db := &models.Database{
		Users: []models.User{
			{Email: SeedOwnerEmail, Password: models.DefaultPassword, Role: models.RoleOwner},
		},
		// reference lists start empty; the owner fills them in from the dashboard
		DMCData:     emptyCompanyData(),
		CurveData:   emptyCompanyData(),
		Submissions: []models.Submission{},
	}

	log.Println("No database file found, seeding", fs.Path)
	return fs.Save(db)
}

func emptyCompanyData() models.CompanyData {
	return models.CompanyData{
		Contracts:   []string{},
		WorkItems:   []string{},
		Contractors: []string{},
	}
}
