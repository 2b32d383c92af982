package application

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/middleware"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/config"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/email"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrPasswordHashFailure = errors.New("failed to hash password")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
	ErrReservedAdminUser   = errors.New("cannot delete or downgrade the reserved admin account")
	ErrAdminNotDeletable   = errors.New("admin accounts cannot be deleted")
)

const resetTokenLifetime = 30 * time.Minute

type UserService struct {
	Repos  *repository.Repos
	Mailer email.Sender
}

func NewUserService(repos *repository.Repos, mailer email.Sender) *UserService {
	return &UserService{Repos: repos, Mailer: mailer}
}

func (s *UserService) Register(input user.RegisterInput) (user.User, string, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return user.User{}, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrPasswordHashFailure
	}

	u := user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     string(user.RoleUser),
	}
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.User{}, "", err
	}

	token, err := middleware.GenerateToken(u.ID, u.Name, u.Email)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) Login(emailAddr, password string) (user.User, string, error) {
	u, err := s.Repos.User.GetUserByEmail(emailAddr)
	if err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(u.ID, u.Name, u.Email)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}

// ForgotPassword issues a reset token and mails the link. The response is the
// same whether or not the email exists, so the endpoint cannot be used to
// probe for accounts.
func (s *UserService) ForgotPassword(emailAddr string) error {
	u, err := s.Repos.User.GetUserByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	hash := hashResetToken(token)
	expiry := time.Now().Add(resetTokenLifetime)
	u.ResetTokenHash = &hash
	u.ResetTokenExpiry = &expiry
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return err
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendPasswordResetEmail(u.Email, token); err != nil {
			log.Printf("[UserService] reset email to %s failed: %v", u.Email, err)
		}
	}
	return nil
}

func (s *UserService) ResetPassword(token, newPassword string) error {
	u, err := s.Repos.User.GetUserByResetTokenHash(hashResetToken(token))
	if err != nil {
		return ErrInvalidResetToken
	}
	if u.ResetTokenExpiry == nil || time.Now().After(*u.ResetTokenExpiry) {
		return ErrInvalidResetToken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}

	now := time.Now()
	u.Password = string(hashed)
	u.MustChangePassword = false
	u.LastPasswordChangeAt = &now
	u.ResetTokenHash = nil
	u.ResetTokenExpiry = nil
	return s.Repos.User.SaveUser(&u)
}

// --- admin user management ---

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) CreateUser(input user.AdminCreateUserInput) (user.User, error) {
	_, err := s.Repos.User.GetUserByEmail(input.Email)
	if err == nil {
		return user.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	role := input.Role
	if role == "" {
		role = string(user.RoleUser)
	}
	u := user.User{
		Name:               input.Name,
		Email:              input.Email,
		Password:           string(hashed),
		Role:               role,
		MustChangePassword: true,
	}
	return u, s.Repos.User.SaveUser(&u)
}

func (s *UserService) UpdateUser(id uint, input user.AdminUpdateUserInput) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.User{}, ErrUserNotFound
	}

	if u.Email == config.ReservedAdminEmail && input.Role != nil && *input.Role != string(user.RoleAdmin) {
		return user.User{}, ErrReservedAdminUser
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		u.Role = *input.Role
	}

	if err := s.Repos.User.SaveUser(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// DeleteUser refuses to remove admin accounts; demote first, then delete.
func (s *UserService) DeleteUser(id uint) error {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if u.IsAdmin() {
		return ErrAdminNotDeletable
	}
	return s.Repos.User.DeleteUser(id)
}

// AdminResetPassword sets a one-time temporary password and forces a change
// at next login.
func (s *UserService) AdminResetPassword(id uint) (string, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return "", ErrUserNotFound
	}

	temp := uuid.NewString()[:12]
	hashed, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrPasswordHashFailure
	}

	u.Password = string(hashed)
	u.MustChangePassword = true
	if err := s.Repos.User.SaveUser(&u); err != nil {
		return "", err
	}
	return temp, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
