package handlers

import (
	"errors"
	"net/http"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/ticket"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	svc     *application.TicketService
	userSvc *application.UserService
}

func NewTicketHandler(svc *application.TicketService, userSvc *application.UserService) *TicketHandler {
	return &TicketHandler{svc: svc, userSvc: userSvc}
}

// List godoc
// @Summary List tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param filter query string false "my-tickets restricts to the caller's tickets"
// @Param limit query int false "page size"
// @Param offset query int false "page offset"
// @Success 200 {array} ticket.Ticket
// @Router /tickets [get]
func (h *TicketHandler) List(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	limit, offset := utils.ParsePagination(c, 50, 200)
	params := repository.TicketListParams{Limit: limit, Offset: offset}
	if c.Query("filter") == "my-tickets" {
		params.OwnerID = &identity.ID
	}

	tickets, err := h.svc.List(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list tickets", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// Create godoc
// @Summary Create a ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} ticket.Ticket
// @Failure 400 {object} response.ErrorResponse "Missing required fields"
// @Router /tickets [post]
func (h *TicketHandler) Create(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	// The payload is bound as a raw map: clients send a mix of camelCase and
	// snake_case keys and the normalization step owns the alias mapping.
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid JSON body", Error: err.Error()})
		return
	}

	created, err := h.svc.Create(raw, identity.ID)
	if err != nil {
		var missing *application.MissingFieldsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: missing.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create ticket", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Fetch one ticket
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	t, err := h.svc.Get(id)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to fetch ticket", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// Update godoc
// @Summary Update a ticket and record its history
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [put]
func (h *TicketHandler) Update(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid JSON body", Error: err.Error()})
		return
	}

	reason, _ := raw["reason"].(string)
	delete(raw, "reason")

	updated, err := h.svc.Update(id, raw, identity.ID, reason)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update ticket", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a ticket (owner or admin only)
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [delete]
func (h *TicketHandler) Delete(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	caller, err := h.userSvc.GetUser(identity.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "User not found"})
		return
	}

	if err := h.svc.Delete(id, identity.ID, caller.IsAdmin()); err != nil {
		switch {
		case errors.Is(err, application.ErrTicketNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
		case errors.Is(err, application.ErrTicketForbidden):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete ticket", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Ticket deleted"})
}

// History godoc
// @Summary List a ticket's audit entries, newest first
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param id path int true "ticket id"
// @Success 200 {array} ticket.TicketHistory
// @Router /tickets/{id}/history [get]
func (h *TicketHandler) History(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid ticket id"})
		return
	}

	entries, err := h.svc.History(id)
	if err != nil {
		if errors.Is(err, application.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Ticket not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list history", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Stats godoc
// @Summary Aggregated ticket statistics
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param filter query string false "my-tickets restricts to the caller's tickets"
// @Success 200 {object} ticket.Stats
// @Router /tickets/meta/stats [get]
func (h *TicketHandler) Stats(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var ownerID *uint
	if c.Query("filter") == "my-tickets" {
		ownerID = &identity.ID
	}

	stats, err := h.svc.Stats(ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to compute statistics", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Search godoc
// @Summary Case-insensitive substring search across ticket fields
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param q query string true "search text"
// @Success 200 {array} ticket.Ticket
// @Router /tickets/meta/search [get]
func (h *TicketHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusOK, []ticket.Ticket{})
		return
	}

	tickets, err := h.svc.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Search failed", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, tickets)
}
