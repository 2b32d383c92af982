package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func userInfo(u user.User) response.UserInfo {
	return response.UserInfo{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		Role:               u.Role,
		MustChangePassword: u.MustChangePassword,
	}
}

// bindingErrorMessage turns validator errors into messages the frontend can
// show directly.
func bindingErrorMessage(err error) string {
	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return "Invalid input"
	}

	labels := map[string]string{
		"Name":        "name",
		"Email":       "email",
		"Password":    "password",
		"NewPassword": "new password",
		"Token":       "token",
	}

	msgs := make([]string, 0, len(verr))
	for _, fe := range verr {
		lbl, ok := labels[fe.StructField()]
		if !ok {
			lbl = strings.ToLower(fe.StructField())
		}

		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", lbl)
		case "min":
			msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", lbl)
		default:
			msg = fmt.Sprintf("%s is invalid", lbl)
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Register godoc
// @Summary Create a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.RegisterInput true "Registration info"
// @Success 201 {object} response.TokenResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input or email taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input user.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	u, token, err := h.svc.Register(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to create account", Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.TokenResponse{Token: token, User: userInfo(u)})
}

// Login godoc
// @Summary Verify credentials and issue a token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	u, token, err := h.svc.Login(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{Token: token, User: userInfo(u)})
}

// Me godoc
// @Summary Return the caller identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.UserInfo
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, err := utils.GetIdentityFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Unauthorized"})
		return
	}

	u, err := h.svc.GetUser(identity.ID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Message: "User not found"})
		return
	}
	c.JSON(http.StatusOK, userInfo(u))
}

// ForgotPassword godoc
// @Summary Issue a password reset token and email a reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.ForgotPasswordInput true "Account email"
// @Success 200 {object} response.MessageResponse
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input user.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	if err := h.svc.ForgotPassword(input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to process request", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "If the account exists, a reset link has been emailed"})
}

// ResetPassword godoc
// @Summary Consume a reset token and set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.ResetPasswordInput true "Token and new password"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid or expired token"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input user.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: bindingErrorMessage(err)})
		return
	}

	if err := h.svc.ResetPassword(input.Token, input.NewPassword); err != nil {
		if errors.Is(err, application.ErrInvalidResetToken) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Failed to reset password", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password updated"})
}
