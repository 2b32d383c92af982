//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/attachment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
)

func TestAttachmentHandler_Integration(t *testing.T) {
	ctx := GetTestContext()
	uploader := NewHTTPClient(ctx.Router, ctx.UserToken)
	stranger := NewHTTPClient(ctx.Router, ctx.OtherToken)
	admin := NewHTTPClient(ctx.Router, ctx.AdminToken)

	createResp, err := uploader.POST("/tickets", ticketPayload())
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	var tk ticket.Ticket
	require.NoError(t, createResp.DecodeJSON(&tk))

	var uploaded attachment.Attachment

	t.Run("Upload - Success", func(t *testing.T) {
		resp, err := uploader.POSTFile(fmt.Sprintf("/tickets/%d/attachments", tk.ID), "file", "fault-photo.jpg", []byte("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		require.NoError(t, resp.DecodeJSON(&uploaded))
		assert.NotZero(t, uploaded.ID)
		assert.Equal(t, tk.ID, uploaded.TicketID)
		assert.Equal(t, ctx.TestUser.ID, uploaded.UserID)
		assert.Equal(t, "fault-photo.jpg", uploaded.FileName)
		assert.EqualValues(t, len("jpeg-bytes"), uploaded.Size)
	})

	t.Run("Upload - Missing File Field", func(t *testing.T) {
		resp, err := uploader.POST(fmt.Sprintf("/tickets/%d/attachments", tk.ID), nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Upload - Unknown Ticket", func(t *testing.T) {
		resp, err := uploader.POSTFile("/tickets/999999/attachments", "file", "fault-photo.jpg", []byte("jpeg-bytes"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ListByTicket", func(t *testing.T) {
		resp, err := stranger.GET(fmt.Sprintf("/tickets/%d/attachments", tk.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var attachments []attachment.Attachment
		require.NoError(t, resp.DecodeJSON(&attachments))
		require.Len(t, attachments, 1)
		assert.Equal(t, "fault-photo.jpg", attachments[0].FileName)
	})

	t.Run("DownloadURL", func(t *testing.T) {
		resp, err := stranger.GET(fmt.Sprintf("/attachments/%d/url", uploaded.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, resp.DecodeJSON(&body))
		assert.NotEmpty(t, body["url"])
	})

	t.Run("Delete - Forbidden for Non-Uploader", func(t *testing.T) {
		resp, err := stranger.DELETE(fmt.Sprintf("/attachments/%d", uploaded.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("Delete - Admin Success", func(t *testing.T) {
		resp, err := admin.DELETE(fmt.Sprintf("/attachments/%d", uploaded.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		listResp, err := uploader.GET(fmt.Sprintf("/tickets/%d/attachments", tk.ID))
		require.NoError(t, err)
		var attachments []attachment.Attachment
		require.NoError(t, listResp.DecodeJSON(&attachments))
		assert.Empty(t, attachments)
	})
}
