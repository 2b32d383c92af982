package repository

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/comment"
	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(c *comment.Comment) error
	GetCommentByID(id uint) (*comment.Comment, error)
	ListCommentsByTicket(ticketID uint) ([]comment.Comment, error)
	ListComments(limit, offset int) ([]comment.Comment, error)
	SaveComment(c *comment.Comment) error
	DeleteComment(id uint) error
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) CreateComment(c *comment.Comment) error {
	return r.db.Create(c).Error
}

func (r *DBCommentRepo) GetCommentByID(id uint) (*comment.Comment, error) {
	var c comment.Comment
	if err := r.db.Preload("User").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCommentsByTicket returns a ticket's thread oldest-first.
func (r *DBCommentRepo) ListCommentsByTicket(ticketID uint) ([]comment.Comment, error) {
	var comments []comment.Comment
	err := r.db.Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("created_at asc").
		Find(&comments).Error
	return comments, err
}

// ListComments pages the global feed newest-first.
func (r *DBCommentRepo) ListComments(limit, offset int) ([]comment.Comment, error) {
	var comments []comment.Comment
	query := r.db.Preload("User").Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	err := query.Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) SaveComment(c *comment.Comment) error {
	return r.db.Save(c).Error
}

func (r *DBCommentRepo) DeleteComment(id uint) error {
	return r.db.Delete(&comment.Comment{}, id).Error
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
