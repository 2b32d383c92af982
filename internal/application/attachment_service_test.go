package application

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/attachment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeObjectStore records calls; the minio client is not exercised in unit tests.
type fakeObjectStore struct {
	putKeys     []string
	removedKeys []string
	putErr      error
}

func (f *fakeObjectStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return nil
}

func (f *fakeObjectStore) PresignedGet(ctx context.Context, key, fileName string, expiry time.Duration) (*url.URL, error) {
	return url.Parse("https://minio.local/" + key + "?signed=1")
}

func (f *fakeObjectStore) Remove(ctx context.Context, key string) error {
	f.removedKeys = append(f.removedKeys, key)
	return nil
}

// --------------------- Setup ---------------------
func setupAttachmentServiceMocks(t *testing.T) (*AttachmentService, *mock.MockAttachmentRepo, *mock.MockTicketRepo, *fakeObjectStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAttachment := mock.NewMockAttachmentRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Attachment: mockAttachment,
		Ticket:     mockTicket,
	}
	store := &fakeObjectStore{}
	svc := NewAttachmentService(repos, store)
	return svc, mockAttachment, mockTicket, store
}

func TestUploadAttachment_Success(t *testing.T) {
	svc, mockAttachment, mockTicket, store := setupAttachmentServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(5)).Return(&ticket.Ticket{ID: 5}, nil)
	mockAttachment.EXPECT().CreateAttachment(gomock.Any()).DoAndReturn(func(a *attachment.Attachment) error {
		a.ID = 1
		return nil
	})

	a, err := svc.Upload(context.Background(), 5, 2, "fault.jpg", "image/jpeg", strings.NewReader("bytes"), 5)
	assert.NoError(t, err)
	assert.Equal(t, uint(5), a.TicketID)
	assert.Equal(t, uint(2), a.UserID)
	assert.Equal(t, "fault.jpg", a.FileName)
	assert.True(t, strings.HasPrefix(a.ObjectKey, "tickets/5/"))
	assert.True(t, strings.HasSuffix(a.ObjectKey, ".jpg"))
	assert.Equal(t, []string{a.ObjectKey}, store.putKeys)
}

func TestUploadAttachment_TicketMissing(t *testing.T) {
	svc, _, mockTicket, store := setupAttachmentServiceMocks(t)

	mockTicket.EXPECT().GetTicketByID(uint(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Upload(context.Background(), 404, 2, "x.txt", "text/plain", strings.NewReader(""), 0)
	assert.Equal(t, ErrTicketNotFound, err)
	assert.Empty(t, store.putKeys)
}

func TestDownloadURL_Success(t *testing.T) {
	svc, mockAttachment, _, _ := setupAttachmentServiceMocks(t)

	mockAttachment.EXPECT().GetAttachmentByID(uint(1)).Return(&attachment.Attachment{ID: 1, ObjectKey: "tickets/5/abc.jpg", FileName: "fault.jpg"}, nil)

	u, err := svc.DownloadURL(context.Background(), 1)
	assert.NoError(t, err)
	assert.Contains(t, u.String(), "tickets/5/abc.jpg")
}

func TestDeleteAttachment_UploaderSucceeds(t *testing.T) {
	svc, mockAttachment, _, store := setupAttachmentServiceMocks(t)

	mockAttachment.EXPECT().GetAttachmentByID(uint(1)).Return(&attachment.Attachment{ID: 1, UserID: 2, ObjectKey: "tickets/5/abc.jpg"}, nil)
	mockAttachment.EXPECT().DeleteAttachment(uint(1)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, 2, false))
	assert.Equal(t, []string{"tickets/5/abc.jpg"}, store.removedKeys)
}

func TestDeleteAttachment_StrangerForbidden(t *testing.T) {
	svc, mockAttachment, _, _ := setupAttachmentServiceMocks(t)

	mockAttachment.EXPECT().GetAttachmentByID(uint(1)).Return(&attachment.Attachment{ID: 1, UserID: 2}, nil)

	assert.Equal(t, ErrNotAttachmentOwner, svc.Delete(context.Background(), 1, 9, false))
}

func TestDeleteAttachment_AdminSucceeds(t *testing.T) {
	svc, mockAttachment, _, _ := setupAttachmentServiceMocks(t)

	mockAttachment.EXPECT().GetAttachmentByID(uint(1)).Return(&attachment.Attachment{ID: 1, UserID: 2, ObjectKey: "k"}, nil)
	mockAttachment.EXPECT().DeleteAttachment(uint(1)).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1, 9, true))
}
