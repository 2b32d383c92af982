package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/domain/user"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/response"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/pkg/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Auth carries the repositories the guards need to resolve identities.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// Identity is the immutable caller identity attached to the request context.
type Identity struct {
	ID    uint
	Name  string
	Email string
}

// Authenticated verifies the bearer token, resolves it against the user
// store, and attaches the caller identity. The token alone is not enough: a
// deleted user's token is rejected even before expiry.
func (a *Auth) Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Authorization required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := ParseToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid token", Error: err.Error()})
			return
		}

		u, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "User not found"})
			return
		}

		c.Set("claims", claims)
		c.Set("identity", Identity{ID: u.ID, Name: u.Name, Email: u.Email})
		c.Next()
	}
}

// Admin re-fetches the caller's role from the store; a stale token issued
// before a demotion does not grant admin access.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Message: "Invalid token claims"})
			return
		}

		u, err := a.repos.User.GetUserByID(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Message: "Internal server error"})
			return
		}
		if u.Role != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}

// CORSMiddleware allows the dashboard origins. WebSocket upgrades bypass the
// CORS handler; the upgrader does its own origin check.
func CORSMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	corsHandler := cors.New(config)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}
