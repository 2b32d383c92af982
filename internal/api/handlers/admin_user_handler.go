package handlers

import (
	"errors"
	"net/http"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
)

// AdminUserHandler covers the admin-only user management surface. Every route
// behind it runs after Auth.Admin().
type AdminUserHandler struct {
	svc *application.UserService
}

func NewAdminUserHandler(svc *application.UserService) *AdminUserHandler {
	return &AdminUserHandler{svc: svc}
}

// List godoc
// @Summary List all user accounts
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.UserInfo
// @Router /admin/users [get]
func (h *AdminUserHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to list users", Error: err.Error()})
		return
	}

	infos := make([]response.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, userInfo(u))
	}
	c.JSON(http.StatusOK, infos)
}

// Create godoc
// @Summary Create a user account
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body user.AdminCreateUserInput true "account details"
// @Success 201 {object} response.UserInfo
// @Failure 400 {object} response.ErrorResponse
// @Router /admin/users [post]
func (h *AdminUserHandler) Create(c *gin.Context) {
	var input user.AdminCreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	created, err := h.svc.CreateUser(input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create user", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, userInfo(created))
}

// Update godoc
// @Summary Update a user's name, email, or role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Param payload body user.AdminUpdateUserInput true "fields to change"
// @Success 200 {object} response.UserInfo
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id} [put]
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	var input user.AdminUpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	updated, err := h.svc.UpdateUser(id, input)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
		case errors.Is(err, application.ErrReservedAdminUser):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to update user", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, userInfo(updated))
}

// Delete godoc
// @Summary Delete a non-admin user account
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} response.MessageResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id} [delete]
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	if err := h.svc.DeleteUser(id); err != nil {
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
		case errors.Is(err, application.ErrAdminNotDeletable):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Message: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to delete user", Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "User deleted"})
}

// ResetPassword godoc
// @Summary Issue a temporary password for a user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "user id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /admin/users/{id}/reset-password [post]
func (h *AdminUserHandler) ResetPassword(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: "Invalid user id"})
		return
	}

	temp, err := h.svc.AdminResetPassword(id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Message: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to reset password", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            "Temporary password issued",
		"temporary_password": temp,
	})
}
