package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Ticket     TicketRepo
	History    HistoryRepo
	Comment    CommentRepo
	Reference  ReferenceRepo
	Attachment AttachmentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Ticket:     NewTicketRepo(db),
		History:    NewHistoryRepo(db),
		Comment:    NewCommentRepo(db),
		Reference:  NewReferenceRepo(db),
		Attachment: NewAttachmentRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Ticket:     r.Ticket.WithTx(tx),
		History:    r.History.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		Reference:  r.Reference.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
