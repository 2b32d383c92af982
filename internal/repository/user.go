package repository

import (
	"strings"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByEmail(email string) (user.User, error)
	GetUserByID(id uint) (user.User, error)
	GetUserByResetTokenHash(hash string) (user.User, error)
	ListUsers() ([]user.User, error)
	SaveUser(u *user.User) error
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

// GetUserByEmail matches case-insensitively; emails are stored lowercase.
func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("lower(email) = ?", strings.ToLower(email)).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByResetTokenHash(hash string) (user.User, error) {
	var u user.User
	err := r.db.Where("reset_token_hash = ?", hash).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	u.Email = strings.ToLower(u.Email)
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
