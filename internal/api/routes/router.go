package routes

import (
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/handlers"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/api/middleware"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/application"
	"github.com/Sisti-Anjana/TickerTrackerMetlenPuresky-sub001/internal/repository"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires the whole HTTP surface. Every logical route is mounted
// twice, at the root and under /api, so the same binary serves deployments
// with and without a path-rewriting proxy in front.
func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) {
	h := handlers.New(svc, r)
	authMiddleware := middleware.NewAuth(repos)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	mount(r.Group("/"), h, authMiddleware)
	mount(r.Group("/api"), h, authMiddleware)
}

func mount(g *gin.RouterGroup, h *handlers.Handlers, authMiddleware *middleware.Auth) {
	auth := g.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		auth.GET("/me", authMiddleware.Authenticated(), h.Auth.Me)
	}

	protected := g.Group("/")
	protected.Use(authMiddleware.Authenticated())
	{
		protected.GET("/ws/stats", h.WS.Stats)

		tickets := protected.Group("/tickets")
		{
			tickets.GET("", h.Ticket.List)
			tickets.POST("", h.Ticket.Create)
			tickets.GET("/meta/stats", h.Ticket.Stats)
			tickets.GET("/meta/search", h.Ticket.Search)
			tickets.GET("/meta/categories", h.Reference.Categories)
			tickets.GET("/meta/statuses", h.Reference.Statuses)
			tickets.GET("/client-types", h.Reference.ClientTypes)
			tickets.GET("/:id", h.Ticket.Get)
			tickets.PUT("/:id", h.Ticket.Update)
			tickets.DELETE("/:id", h.Ticket.Delete)
			tickets.GET("/:id/history", h.Ticket.History)
			tickets.GET("/:id/comments", h.Comment.ListByTicket)
			tickets.GET("/:id/attachments", h.Attachment.ListByTicket)
			tickets.POST("/:id/attachments", h.Attachment.Upload)
		}

		comments := protected.Group("/comments")
		{
			comments.GET("", h.Comment.List)
			comments.POST("", h.Comment.Create)
			comments.PUT("/:id", h.Comment.Update)
			comments.DELETE("/:id", h.Comment.Delete)
		}

		attachments := protected.Group("/attachments")
		{
			attachments.GET("/:id/url", h.Attachment.DownloadURL)
			attachments.DELETE("/:id", h.Attachment.Delete)
		}

		equipment := protected.Group("/equipment")
		{
			equipment.GET("", h.Reference.Equipment)
			equipment.POST("", authMiddleware.Admin(), h.Reference.CreateEquipment)
			equipment.DELETE("/:id", authMiddleware.Admin(), h.Reference.DeleteEquipment)
		}

		admin := protected.Group("/admin")
		admin.Use(authMiddleware.Admin())
		{
			admin.GET("/users", h.AdminUser.List)
			admin.POST("/users", h.AdminUser.Create)
			admin.PUT("/users/:id", h.AdminUser.Update)
			admin.DELETE("/users/:id", h.AdminUser.Delete)
			admin.POST("/users/:id/reset-password", h.AdminUser.ResetPassword)

			admin.POST("/categories", h.Reference.CreateCategory)
			admin.DELETE("/categories/:id", h.Reference.DeleteCategory)
			admin.POST("/statuses", h.Reference.CreateStatus)
			admin.DELETE("/statuses/:id", h.Reference.DeleteStatus)
			admin.POST("/client-types", h.Reference.CreateClientType)
			admin.DELETE("/client-types/:id", h.Reference.DeleteClientType)
			admin.POST("/sites", h.Reference.CreateSite)
			admin.DELETE("/sites/:id", h.Reference.DeleteSite)
		}
	}
}
