package handlers

import (
	"errors"
	"net/http"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/reference"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	svc *application.ReferenceService
}

func NewReferenceHandler(svc *application.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{svc: svc}
}

// The lookup endpoints never fail: the service falls back to an empty slice
// when the store is unreachable.

// Categories godoc
// @Summary Active ticket categories
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reference.Category
// @Router /tickets/meta/categories [get]
func (h *ReferenceHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories(true))
}

// Statuses godoc
// @Summary Active ticket statuses
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reference.Status
// @Router /tickets/meta/statuses [get]
func (h *ReferenceHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Statuses(true))
}

// Equipment godoc
// @Summary Active equipment list
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reference.Equipment
// @Router /equipment [get]
func (h *ReferenceHandler) Equipment(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Equipment(true))
}

// ClientTypes godoc
// @Summary Active client types joined with their active sites
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Success 200 {array} reference.ClientType
// @Router /tickets/client-types [get]
func (h *ReferenceHandler) ClientTypes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ClientTypes(true))
}

// createNamed binds the common {name} payload and funnels the result through
// the shared duplicate translation.
func (h *ReferenceHandler) createNamed(c *gin.Context, create func(string) (any, error)) {
	var input reference.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	created, err := create(input.Name)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create row", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReferenceHandler) deactivate(c *gin.Context, remove func(uint) error) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid id"})
		return
	}

	if err := remove(id); err != nil {
		if errors.Is(err, application.ErrReferenceNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "Row not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to deactivate row", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Row deactivated"})
}

// CreateCategory godoc
// @Summary Add a ticket category
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body reference.CreateInput true "name"
// @Success 201 {object} reference.Category
// @Router /admin/categories [post]
func (h *ReferenceHandler) CreateCategory(c *gin.Context) {
	h.createNamed(c, func(name string) (any, error) { return h.svc.CreateCategory(name) })
}

// DeleteCategory godoc
// @Summary Deactivate a ticket category
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "category id"
// @Success 200 {object} response.MessageResponse
// @Router /admin/categories/{id} [delete]
func (h *ReferenceHandler) DeleteCategory(c *gin.Context) {
	h.deactivate(c, h.svc.DeactivateCategory)
}

// CreateStatus godoc
// @Summary Add a ticket status
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body reference.CreateInput true "name"
// @Success 201 {object} reference.Status
// @Router /admin/statuses [post]
func (h *ReferenceHandler) CreateStatus(c *gin.Context) {
	h.createNamed(c, func(name string) (any, error) { return h.svc.CreateStatus(name) })
}

// DeleteStatus godoc
// @Summary Deactivate a ticket status
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "status id"
// @Success 200 {object} response.MessageResponse
// @Router /admin/statuses/{id} [delete]
func (h *ReferenceHandler) DeleteStatus(c *gin.Context) {
	h.deactivate(c, h.svc.DeactivateStatus)
}

// CreateEquipment godoc
// @Summary Add an equipment row
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body reference.CreateInput true "name"
// @Success 201 {object} reference.Equipment
// @Router /equipment [post]
func (h *ReferenceHandler) CreateEquipment(c *gin.Context) {
	h.createNamed(c, func(name string) (any, error) { return h.svc.CreateEquipment(name) })
}

// DeleteEquipment godoc
// @Summary Deactivate an equipment row
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "equipment id"
// @Success 200 {object} response.MessageResponse
// @Router /equipment/{id} [delete]
func (h *ReferenceHandler) DeleteEquipment(c *gin.Context) {
	h.deactivate(c, h.svc.DeactivateEquipment)
}

// CreateClientType godoc
// @Summary Add a client type
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body reference.CreateInput true "name"
// @Success 201 {object} reference.ClientType
// @Router /admin/client-types [post]
func (h *ReferenceHandler) CreateClientType(c *gin.Context) {
	h.createNamed(c, func(name string) (any, error) { return h.svc.CreateClientType(name) })
}

// DeleteClientType godoc
// @Summary Deactivate a client type
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "client type id"
// @Success 200 {object} response.MessageResponse
// @Router /admin/client-types/{id} [delete]
func (h *ReferenceHandler) DeleteClientType(c *gin.Context) {
	h.deactivate(c, h.svc.DeactivateClientType)
}

// CreateSite godoc
// @Summary Add a site under a client type
// @Tags reference
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body reference.CreateSiteInput true "client type id and name"
// @Success 201 {object} reference.Site
// @Router /admin/sites [post]
func (h *ReferenceHandler) CreateSite(c *gin.Context) {
	var input reference.CreateSiteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	site, err := h.svc.CreateSite(input)
	if err != nil {
		if errors.Is(err, application.ErrDuplicateName) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create site", Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, site)
}

// DeleteSite godoc
// @Summary Deactivate a site
// @Tags reference
// @Produce json
// @Security BearerAuth
// @Param id path int true "site id"
// @Success 200 {object} response.MessageResponse
// @Router /admin/sites/{id} [delete]
func (h *ReferenceHandler) DeleteSite(c *gin.Context) {
	h.deactivate(c, h.svc.DeactivateSite)
}
