package handlers

import (
	"errors"
	"net/http"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/comment"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary Add a comment to a ticket
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body comment.CreateCommentInput true "ticket id and text"
// @Success 201 {object} comment.Comment
// @Failure 404 {object} response.ErrorResponse
// @Router /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var input comment.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	created, err := h.svc.Create(input, identity.ID)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create comment", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List comments across all tickets, newest first
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {array} comment.Comment
// @Router /comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	limit, offset := utils.ParsePagination(c, 50, 200)

	comments, err := h.svc.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list comments", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// ListByTicket godoc
// @Summary List comments on a ticket, oldest first
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {array} comment.Comment
// @Router /tickets/{id}/comments [get]
func (h *CommentHandler) ListByTicket(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	comments, err := h.svc.ListByTicket(id)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list comments", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, comments)
}

// Update godoc
// @Summary Edit a comment (author only)
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Param payload body comment.UpdateCommentInput true "new text"
// @Success 200 {object} comment.Comment
// @Failure 403 {object} response.ErrorResponse
// @Router /comments/{id} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid comment id"})
		return
	}

	var input comment.UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	updated, err := h.svc.Update(id, input.Content, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Comment not found"})
		case errors.Is(err, application.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update comment", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a comment (author only)
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "comment id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid comment id"})
		return
	}

	if err := h.svc.Delete(id, identity.ID); err != nil {
		switch {
		case errors.Is(err, application.ErrCommentNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Comment not found"})
		case errors.Is(err, application.ErrNotCommentOwner):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete comment", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Comment deleted"})
}
