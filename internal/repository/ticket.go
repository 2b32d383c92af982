package repository

import (
	"fmt"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"gorm.io/gorm"
)

// TicketListParams filters and pages GET /tickets.
type TicketListParams struct {
	OwnerID *uint
	Limit   int
	Offset  int
}

// StatsRow is the minimal projection the statistics pass reads.
type StatsRow struct {
	TicketStatus string
	Category     string
	CreatedAt    time.Time
}

type TicketRepo interface {
	CreateTicket(t *ticket.Ticket) error
	GetTicketByID(id uint) (*ticket.Ticket, error)
	ListTickets(params TicketListParams) ([]ticket.Ticket, error)
	SearchTickets(query string) ([]ticket.Ticket, error)
	ListStatsRows(ownerID *uint) ([]StatsRow, error)
	SaveTicket(t *ticket.Ticket) error
	DeleteTicket(id uint) error
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{db: db}
}

// CreateTicket inserts the row and then stamps the human-readable ticket
// number from the assigned ID. Numbers look sequential but are not gapless
// once rows are deleted.
func (r *DBTicketRepo) CreateTicket(t *ticket.Ticket) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(t).Error; err != nil {
			return err
		}
		t.TicketNumber = fmt.Sprintf("TKT-%06d", t.ID)
		return tx.Model(t).Update("ticket_number", t.TicketNumber).Error
	})
}

func (r *DBTicketRepo) GetTicketByID(id uint) (*ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.db.Preload("User").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *DBTicketRepo) ListTickets(params TicketListParams) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	query := r.db.Preload("User").Order("created_at desc")
	if params.OwnerID != nil {
		query = query.Where("user_id = ?", *params.OwnerID)
	}
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) SearchTickets(query string) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	pattern := "%" + query + "%"
	err := r.db.Preload("User").
		Where(
			r.db.Where("ticket_number ILIKE ?", pattern).
				Or("customer_name ILIKE ?", pattern).
				Or("equipment ILIKE ?", pattern).
				Or("category ILIKE ?", pattern).
				Or("issue_description ILIKE ?", pattern).
				Or("case_number ILIKE ?", pattern),
		).
		Order("created_at desc").
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) ListStatsRows(ownerID *uint) ([]StatsRow, error) {
	var rows []StatsRow
	query := r.db.Model(&ticket.Ticket{}).Select("ticket_status, category, created_at")
	if ownerID != nil {
		query = query.Where("user_id = ?", *ownerID)
	}
	err := query.Scan(&rows).Error
	return rows, err
}

func (r *DBTicketRepo) SaveTicket(t *ticket.Ticket) error {
	return r.db.Save(t).Error
}

func (r *DBTicketRepo) DeleteTicket(id uint) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{db: tx}
}
