package application

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/email"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/storage"
)

type Services struct {
	User       *UserService
	Ticket     *TicketService
	Comment    *CommentService
	Reference  *ReferenceService
	Attachment *AttachmentService
}

func New(repos *repository.Repos, mailer email.Sender, store storage.ObjectStore) *Services {
	return &Services{
		User:       NewUserService(repos, mailer),
		Ticket:     NewTicketService(repos),
		Comment:    NewCommentService(repos),
		Reference:  NewReferenceService(repos),
		Attachment: NewAttachmentService(repos, store),
	}
}
