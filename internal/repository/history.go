package repository

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"gorm.io/gorm"
)

type HistoryRepo interface {
	CreateHistory(entry *ticket.TicketHistory) error
	ListHistoryByTicket(ticketID uint) ([]ticket.TicketHistory, error)
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{db: db}
}

func (r *DBHistoryRepo) CreateHistory(entry *ticket.TicketHistory) error {
	return r.db.Create(entry).Error
}

func (r *DBHistoryRepo) ListHistoryByTicket(ticketID uint) ([]ticket.TicketHistory, error) {
	var entries []ticket.TicketHistory
	err := r.db.Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("created_at desc").
		Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{db: tx}
}
