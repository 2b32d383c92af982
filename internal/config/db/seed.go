package db

import (
	_ "embed"
	"errors"
	"fmt"
	"log"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Categories  []string `yaml:"categories"`
	Statuses    []string `yaml:"statuses"`
	Equipment   []string `yaml:"equipment"`
	ClientTypes []struct {
		Name  string   `yaml:"name"`
		Sites []string `yaml:"sites"`
	} `yaml:"client_types"`
	Admin struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"admin"`
}

// Seed loads the baseline reference data and the reserved admin account.
// Every insert is idempotent, so running it on every startup is safe.
func Seed(gormDB *gorm.DB) error {
	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	for _, name := range file.Categories {
		row := reference.Category{Name: name, IsActive: true}
		if err := firstOrCreate(gormDB, &row, "name = ?", name); err != nil {
			return err
		}
	}
	for _, name := range file.Statuses {
		row := reference.Status{Name: name, IsActive: true}
		if err := firstOrCreate(gormDB, &row, "name = ?", name); err != nil {
			return err
		}
	}
	for _, name := range file.Equipment {
		row := reference.Equipment{Name: name, IsActive: true}
		if err := firstOrCreate(gormDB, &row, "name = ?", name); err != nil {
			return err
		}
	}

	for _, ct := range file.ClientTypes {
		row := reference.ClientType{Name: ct.Name, IsActive: true}
		if err := firstOrCreate(gormDB, &row, "name = ?", ct.Name); err != nil {
			return err
		}
		for _, siteName := range ct.Sites {
			site := reference.Site{ClientTypeID: row.ID, Name: siteName, IsActive: true}
			if err := firstOrCreate(gormDB, &site, "client_type_id = ? AND name = ?", row.ID, siteName); err != nil {
				return err
			}
		}
	}

	return seedAdmin(gormDB, file.Admin.Name, file.Admin.Email)
}

func seedAdmin(gormDB *gorm.DB, name, email string) error {
	if email == "" {
		email = config.ReservedAdminEmail
	}

	var existing user.User
	err := gormDB.Where("lower(email) = lower(?)", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(config.AdminInitialPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := user.User{
		Name:               name,
		Email:              email,
		Password:           string(hashed),
		Role:               string(user.RoleAdmin),
		MustChangePassword: true,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		return err
	}
	log.Printf("Seeded reserved admin account %s", email)
	return nil
}

func firstOrCreate(gormDB *gorm.DB, row any, query string, args ...any) error {
	return gormDB.Where(query, args...).FirstOrCreate(row).Error
}
