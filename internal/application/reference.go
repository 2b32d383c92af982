package application

import (
	"errors"
	"log"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrDuplicateName     = errors.New("a row with that name already exists")
	ErrReferenceNotFound = errors.New("reference row not found")
)

type ReferenceService struct {
	Repos *repository.Repos
}

func NewReferenceService(repos *repository.Repos) *ReferenceService {
	return &ReferenceService{Repos: repos}
}

// Lookup listings degrade to an empty slice on store failure so the
// dashboard's polling loops keep rendering.

func (s *ReferenceService) Categories(activeOnly bool) []reference.Category {
	rows, err := s.Repos.Reference.ListCategories(activeOnly)
	if err != nil {
		log.Printf("[ReferenceService] list categories failed: %v", err)
		return []reference.Category{}
	}
	return rows
}

func (s *ReferenceService) Statuses(activeOnly bool) []reference.Status {
	rows, err := s.Repos.Reference.ListStatuses(activeOnly)
	if err != nil {
		log.Printf("[ReferenceService] list statuses failed: %v", err)
		return []reference.Status{}
	}
	return rows
}

func (s *ReferenceService) Equipment(activeOnly bool) []reference.Equipment {
	rows, err := s.Repos.Reference.ListEquipment(activeOnly)
	if err != nil {
		log.Printf("[ReferenceService] list equipment failed: %v", err)
		return []reference.Equipment{}
	}
	return rows
}

func (s *ReferenceService) ClientTypes(activeOnly bool) []reference.ClientType {
	rows, err := s.Repos.Reference.ListClientTypes(activeOnly)
	if err != nil {
		log.Printf("[ReferenceService] list client types failed: %v", err)
		return []reference.ClientType{}
	}
	return rows
}

func (s *ReferenceService) CreateCategory(name string) (*reference.Category, error) {
	c := &reference.Category{Name: name, IsActive: true}
	if err := s.Repos.Reference.CreateCategory(c); err != nil {
		return nil, translateDuplicate(err)
	}
	return c, nil
}

func (s *ReferenceService) DeactivateCategory(id uint) error {
	return translateNotFound(s.Repos.Reference.DeactivateCategory(id))
}

func (s *ReferenceService) CreateStatus(name string) (*reference.Status, error) {
	st := &reference.Status{Name: name, IsActive: true}
	if err := s.Repos.Reference.CreateStatus(st); err != nil {
		return nil, translateDuplicate(err)
	}
	return st, nil
}

func (s *ReferenceService) DeactivateStatus(id uint) error {
	return translateNotFound(s.Repos.Reference.DeactivateStatus(id))
}

func (s *ReferenceService) CreateEquipment(name string) (*reference.Equipment, error) {
	e := &reference.Equipment{Name: name, IsActive: true}
	if err := s.Repos.Reference.CreateEquipment(e); err != nil {
		return nil, translateDuplicate(err)
	}
	return e, nil
}

func (s *ReferenceService) DeactivateEquipment(id uint) error {
	return translateNotFound(s.Repos.Reference.DeactivateEquipment(id))
}

func (s *ReferenceService) CreateClientType(name string) (*reference.ClientType, error) {
	ct := &reference.ClientType{Name: name, IsActive: true}
	if err := s.Repos.Reference.CreateClientType(ct); err != nil {
		return nil, translateDuplicate(err)
	}
	return ct, nil
}

func (s *ReferenceService) DeactivateClientType(id uint) error {
	return translateNotFound(s.Repos.Reference.DeactivateClientType(id))
}

func (s *ReferenceService) CreateSite(input reference.CreateSiteInput) (*reference.Site, error) {
	site := &reference.Site{ClientTypeID: input.ClientTypeID, Name: input.Name, IsActive: true}
	if err := s.Repos.Reference.CreateSite(site); err != nil {
		return nil, translateDuplicate(err)
	}
	return site, nil
}

func (s *ReferenceService) DeactivateSite(id uint) error {
	return translateNotFound(s.Repos.Reference.DeactivateSite(id))
}

func translateDuplicate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateName
	}
	return err
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrReferenceNotFound
	}
	return err
}
