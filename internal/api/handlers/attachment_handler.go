package handlers

import (
	"errors"
	"net/http"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

const maxAttachmentSize = 25 << 20 // 25 MiB

type AttachmentHandler struct {
	svc     *application.AttachmentService
	userSvc *application.UserService
}

func NewAttachmentHandler(svc *application.AttachmentService, userSvc *application.UserService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc, userSvc: userSvc}
}

// Upload godoc
// @Summary Attach a file to a ticket
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Param file formData file true "file to attach"
// @Success 201 {object} attachment.Attachment
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "A 'file' form field is required"})
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "File exceeds the 25 MiB limit"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to read upload", Error: err.Error()})
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	created, err := h.svc.Upload(c.Request.Context(), ticketID, identity.ID, fileHeader.Filename, contentType, f, fileHeader.Size)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to store attachment", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListByTicket godoc
// @Summary List a ticket's attachments
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {array} attachment.Attachment
// @Router /tickets/{id}/attachments [get]
func (h *AttachmentHandler) ListByTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	attachments, err := h.svc.ListByTicket(ticketID)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list attachments", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// DownloadURL godoc
// @Summary Presigned download link for an attachment
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "attachment id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /attachments/{id}/url [get]
func (h *AttachmentHandler) DownloadURL(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid attachment id"})
		return
	}

	u, err := h.svc.DownloadURL(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrAttachmentNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Attachment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to sign download link", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": u.String()})
}

// Delete godoc
// @Summary Delete an attachment (uploader or admin)
// @Tags attachments
// @Produce json
// @Security BearerAuth
// @Param id path int true "attachment id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid attachment id"})
		return
	}

	caller, err := h.userSvc.GetUser(identity.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "User not found"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id, identity.ID, caller.IsAdmin()); err != nil {
		switch {
		case errors.Is(err, application.ErrAttachmentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Attachment not found"})
		case errors.Is(err, application.ErrNotAttachmentOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete attachment", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Attachment deleted"})
}
