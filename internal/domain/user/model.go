package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID                   uint       `gorm:"primaryKey" json:"id"`
	Name                 string     `gorm:"size:100;not null" json:"name"`
	Email                string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password             string     `gorm:"size:255;not null" json:"-"`
	Role                 string     `gorm:"size:20;default:'user';not null" json:"role"`
	MustChangePassword   bool       `gorm:"default:false" json:"must_change_password"`
	LastPasswordChangeAt *time.Time `json:"last_password_change_at,omitempty"`
	ResetTokenHash       *string    `gorm:"size:64" json:"-"`
	ResetTokenExpiry     *time.Time `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
