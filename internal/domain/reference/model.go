package reference

import "time"

// Reference rows are name-keyed lookups. They are soft-deactivated rather than
// removed so tickets that reference a retired value by name keep resolving.

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Status struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Equipment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type ClientType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`

	Sites []Site `gorm:"foreignKey:ClientTypeID" json:"sites"`
}

type Site struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ClientTypeID uint      `gorm:"not null;index" json:"client_type_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateInput struct {
	Name string `json:"name" binding:"required"`
}

type CreateSiteInput struct {
	ClientTypeID uint   `json:"client_type_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
}
