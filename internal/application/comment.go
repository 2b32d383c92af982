package application

import (
	"errors"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/comment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotCommentOwner = errors.New("only the author can modify this comment")
)

type CommentService struct {
	Repos *repository.Repos
}

func NewCommentService(repos *repository.Repos) *CommentService {
	return &CommentService{Repos: repos}
}

func (s *CommentService) Create(input comment.CreateCommentInput, authorID uint) (*comment.Comment, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(input.TicketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	c := &comment.Comment{
		TicketID: input.TicketID,
		UserID:   authorID,
		Content:  input.Content,
	}
	if err := s.Repos.Comment.CreateComment(c); err != nil {
		return nil, err
	}
	return s.Repos.Comment.GetCommentByID(c.ID)
}

func (s *CommentService) ListByTicket(ticketID uint) ([]comment.Comment, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return s.Repos.Comment.ListCommentsByTicket(ticketID)
}

func (s *CommentService) List(limit, offset int) ([]comment.Comment, error) {
	return s.Repos.Comment.ListComments(limit, offset)
}

func (s *CommentService) Update(id uint, content string, callerID uint) (*comment.Comment, error) {
	c, err := s.Repos.Comment.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	if c.UserID != callerID {
		return nil, ErrNotCommentOwner
	}

	c.Content = content
	if err := s.Repos.Comment.SaveComment(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) Delete(id uint, callerID uint) error {
	c, err := s.Repos.Comment.GetCommentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.UserID != callerID {
		return ErrNotCommentOwner
	}
	return s.Repos.Comment.DeleteComment(id)
}
