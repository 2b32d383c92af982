package repository

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/attachment"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	CreateAttachment(a *attachment.Attachment) error
	GetAttachmentByID(id uint) (*attachment.Attachment, error)
	ListAttachmentsByTicket(ticketID uint) ([]attachment.Attachment, error)
	DeleteAttachment(id uint) error
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) CreateAttachment(a *attachment.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) GetAttachmentByID(id uint) (*attachment.Attachment, error) {
	var a attachment.Attachment
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *DBAttachmentRepo) ListAttachmentsByTicket(ticketID uint) ([]attachment.Attachment, error) {
	var rows []attachment.Attachment
	err := r.db.Where("ticket_id = ?", ticketID).Order("created_at asc").Find(&rows).Error
	return rows, err
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&attachment.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
