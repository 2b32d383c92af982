package repository

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
	"gorm.io/gorm"
)

type ReferenceRepo interface {
	ListCategories(activeOnly bool) ([]reference.Category, error)
	CreateCategory(c *reference.Category) error
	DeactivateCategory(id uint) error

	ListStatuses(activeOnly bool) ([]reference.Status, error)
	CreateStatus(s *reference.Status) error
	DeactivateStatus(id uint) error

	ListEquipment(activeOnly bool) ([]reference.Equipment, error)
	CreateEquipment(e *reference.Equipment) error
	DeactivateEquipment(id uint) error

	ListClientTypes(activeOnly bool) ([]reference.ClientType, error)
	CreateClientType(ct *reference.ClientType) error
	DeactivateClientType(id uint) error

	CreateSite(s *reference.Site) error
	DeactivateSite(id uint) error

	WithTx(tx *gorm.DB) ReferenceRepo
}

type DBReferenceRepo struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) *DBReferenceRepo {
	return &DBReferenceRepo{db: db}
}

func active(query *gorm.DB, activeOnly bool) *gorm.DB {
	if activeOnly {
		return query.Where("is_active = ?", true)
	}
	return query
}

func (r *DBReferenceRepo) ListCategories(activeOnly bool) ([]reference.Category, error) {
	var rows []reference.Category
	err := active(r.db.Order("name asc"), activeOnly).Find(&rows).Error
	return rows, err
}

func (r *DBReferenceRepo) CreateCategory(c *reference.Category) error {
	return r.db.Create(c).Error
}

func (r *DBReferenceRepo) DeactivateCategory(id uint) error {
	return r.deactivate(&reference.Category{}, id)
}

func (r *DBReferenceRepo) ListStatuses(activeOnly bool) ([]reference.Status, error) {
	var rows []reference.Status
	err := active(r.db.Order("id asc"), activeOnly).Find(&rows).Error
	return rows, err
}

func (r *DBReferenceRepo) CreateStatus(s *reference.Status) error {
	return r.db.Create(s).Error
}

func (r *DBReferenceRepo) DeactivateStatus(id uint) error {
	return r.deactivate(&reference.Status{}, id)
}

func (r *DBReferenceRepo) ListEquipment(activeOnly bool) ([]reference.Equipment, error) {
	var rows []reference.Equipment
	err := active(r.db.Order("name asc"), activeOnly).Find(&rows).Error
	return rows, err
}

func (r *DBReferenceRepo) CreateEquipment(e *reference.Equipment) error {
	return r.db.Create(e).Error
}

func (r *DBReferenceRepo) DeactivateEquipment(id uint) error {
	return r.deactivate(&reference.Equipment{}, id)
}

func (r *DBReferenceRepo) ListClientTypes(activeOnly bool) ([]reference.ClientType, error) {
	var rows []reference.ClientType
	query := r.db.Preload("Sites", "is_active = ?", true).Order("name asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&rows).Error
	return rows, err
}

func (r *DBReferenceRepo) CreateClientType(ct *reference.ClientType) error {
	return r.db.Create(ct).Error
}

func (r *DBReferenceRepo) DeactivateClientType(id uint) error {
	return r.deactivate(&reference.ClientType{}, id)
}

func (r *DBReferenceRepo) CreateSite(s *reference.Site) error {
	return r.db.Create(s).Error
}

func (r *DBReferenceRepo) DeactivateSite(id uint) error {
	return r.deactivate(&reference.Site{}, id)
}

// deactivate soft-deletes: the row stays for referential integrity, the flag
// hides it from active listings.
func (r *DBReferenceRepo) deactivate(model any, id uint) error {
	result := r.db.Model(model).Where("id = ?", id).Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DBReferenceRepo) WithTx(tx *gorm.DB) ReferenceRepo {
	if tx == nil {
		return r
	}
	return &DBReferenceRepo{db: tx}
}
