package routes

import (
	"github.com/chenghui/supervision-go/internal/api/handlers"
	"github.com/chenghui/supervision-go/internal/api/middleware"
	"github.com/chenghui/supervision-go/internal/application"
	"github.com/chenghui/supervision-go/internal/domain/user"
	"github.com/chenghui/supervision-go/internal/repository"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, svc *application.Services, repos *repository.Repos) {
	h := handlers.New(svc, r)
	authMiddleware := middleware.NewAuth(repos)

	r.POST("/login", h.User.Login)
	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware(), authMiddleware.LoadUser())
	{
		auth.GET("/me", h.User.Me)
		auth.POST("/register",
			authMiddleware.RequireRoles(user.RoleChief, user.RoleLeader), h.User.Register)

		reports := auth.Group("/reports")
		{
			reports.GET("", h.Report.List)
			reports.POST("", h.Report.Create)
			reports.GET("/stats", h.Report.Stats)
			reports.GET("/important-pending", h.Report.ImportantPending)
			reports.GET("/export", h.Report.ExportLedger)
			reports.POST("/draft", h.Insight.Draft)
			reports.GET("/:id", h.Report.Get)
			reports.GET("/:id/document", h.Report.Document)
			reports.GET("/:id/document/image", h.Report.ExportImage)
			reports.PUT("/:id/approve", h.Report.Approve)
			reports.PUT("/:id/reject", h.Report.Reject)
		}

		auth.GET("/insights/risk-summary", h.Insight.RiskSummary)

		projects := auth.Group("/projects")
		{
			projects.GET("", h.Project.List)
			projects.GET("/:id", h.Project.Get)
			projects.POST("", authMiddleware.RequireRoles(user.RoleLeader), h.Project.Create)
			projects.PUT("/:id", authMiddleware.RequireRoles(user.RoleLeader), h.Project.Update)
			projects.DELETE("/:id", authMiddleware.RequireRoles(user.RoleLeader), h.Project.Delete)
		}

		users := auth.Group("/users", authMiddleware.RequireRoles(user.RoleLeader))
		{
			users.GET("", h.User.List)
			users.POST("", h.User.Register)
			users.PUT("/:id", h.User.Update)
			users.DELETE("/:id", h.User.Delete)
		}

		announcements := auth.Group("/announcements")
		{
			announcements.GET("", h.Announcement.List)
			announcements.POST("", h.Announcement.Publish)
		}

		attendance := auth.Group("/attendance")
		{
			attendance.GET("", h.Attendance.List)
			attendance.POST("", h.Attendance.Clock)
		}
	}
}
