package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/attachment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/storage"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrNotAttachmentOwner = errors.New("only the uploader or an admin can delete this attachment")
)

type AttachmentService struct {
	Repos *repository.Repos
	Store storage.ObjectStore
}

func NewAttachmentService(repos *repository.Repos, store storage.ObjectStore) *AttachmentService {
	return &AttachmentService{Repos: repos, Store: store}
}

// Upload stores the bytes in the object store first; the metadata row is only
// written once the object exists.
func (s *AttachmentService) Upload(ctx context.Context, ticketID, uploaderID uint, fileName, contentType string, content io.Reader, size int64) (*attachment.Attachment, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	objectKey := fmt.Sprintf("tickets/%d/%s%s", ticketID, uuid.NewString(), filepath.Ext(fileName))
	if err := s.Store.Put(ctx, objectKey, contentType, content, size); err != nil {
		return nil, err
	}

	a := &attachment.Attachment{
		TicketID:    ticketID,
		UserID:      uploaderID,
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
		Size:        size,
	}
	if err := s.Repos.Attachment.CreateAttachment(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AttachmentService) ListByTicket(ticketID uint) ([]attachment.Attachment, error) {
	if _, err := s.Repos.Ticket.GetTicketByID(ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	return s.Repos.Attachment.ListAttachmentsByTicket(ticketID)
}

// DownloadURL returns a presigned link valid for 15 minutes.
func (s *AttachmentService) DownloadURL(ctx context.Context, id uint) (*url.URL, error) {
	a, err := s.Repos.Attachment.GetAttachmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, err
	}
	return s.Store.PresignedGet(ctx, a.ObjectKey, a.FileName, 15*time.Minute)
}

func (s *AttachmentService) Delete(ctx context.Context, id uint, callerID uint, callerIsAdmin bool) error {
	a, err := s.Repos.Attachment.GetAttachmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttachmentNotFound
		}
		return err
	}
	if a.UserID != callerID && !callerIsAdmin {
		return ErrNotAttachmentOwner
	}

	if err := s.Repos.Attachment.DeleteAttachment(id); err != nil {
		return err
	}
	if err := s.Store.Remove(ctx, a.ObjectKey); err != nil {
		// Row is gone; an orphaned object is tolerable and logged upstream.
		return err
	}
	return nil
}
