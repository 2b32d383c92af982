package handlers

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *AuthHandler
	Ticket     *TicketHandler
	Comment    *CommentHandler
	Reference  *ReferenceHandler
	AdminUser  *AdminUserHandler
	Attachment *AttachmentHandler
	WS         *WSHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		Auth:       NewAuthHandler(svc.User),
		Ticket:     NewTicketHandler(svc.Ticket, svc.User),
		Comment:    NewCommentHandler(svc.Comment),
		Reference:  NewReferenceHandler(svc.Reference),
		AdminUser:  NewAdminUserHandler(svc.User),
		Attachment: NewAttachmentHandler(svc.Attachment, svc.User),
		WS:         NewWSHandler(svc.Ticket),
		Router:     router,
	}
}
