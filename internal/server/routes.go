package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Init swagger doc
	_ "corpsite-backend/docs"

	"corpsite-backend/internal/auth"
	"corpsite-backend/internal/controller/admin"
	"corpsite-backend/internal/controller/application"
	"corpsite-backend/internal/controller/career"
	"corpsite-backend/internal/controller/certificate"
	"corpsite-backend/internal/controller/client"
	"corpsite-backend/internal/controller/company"
	"corpsite-backend/internal/controller/contact"
	"corpsite-backend/internal/controller/file"
	"corpsite-backend/internal/controller/project"
	"corpsite-backend/internal/metrics"
	"corpsite-backend/internal/middleware"
	"corpsite-backend/internal/model"
	"corpsite-backend/internal/upload"
)

// Public form submissions allowed per client IP and window
const (
	formLimit  = 5
	formWindow = 15 * time.Minute
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.New()
	if proxies := s.Cfg.Server.TrustedProxies; proxies != "" {
		if err := r.SetTrustedProxies(splitList(proxies)); err != nil {
			s.Logger.Warn("invalid trusted proxies", "error", err)
		}
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		gin.Recovery(),
		middleware.CorrelationIDMiddleware(),
		middleware.SlogLoggerMiddleware(s.Logger),
		metrics.GinMiddleware(),
		middleware.SafeHeader(),
		cors.New(cors.Config{
			AllowOrigins:     s.Cfg.Server.AllowedOrigins(),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
			AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Correlation-ID"},
			ExposeHeaders:    []string{"X-Correlation-ID", "Content-Disposition"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	uploader := upload.New(s.Store, upload.NewClamdScanner(s.Cfg.Server.ClamdAddr), s.Logger)
	cleaner := s.Cleaner()

	authHandler := auth.NewHandler(s.DB, s.Tokens, s.Blacklist, auth.CookieOptions{
		Secure: s.Cfg.Auth.CookieSecure,
		Domain: s.Cfg.Auth.CookieDomain,
	})
	adminController := admin.NewAdminController(s.DB)
	careers := career.NewCareerController(s.DB, cleaner)
	applications := application.NewApplicationController(s.DB, uploader, cleaner)
	clients := client.NewClientController(s.DB, uploader, cleaner)
	contacts := contact.NewContactController(s.DB)
	certificates := certificate.NewCertificateController(s.DB, uploader, cleaner)
	companies := company.NewCompanyController(s.DB, uploader, cleaner)
	projects := project.NewProjectController(s.DB, uploader, cleaner)
	files := file.NewFileController(s.Store)

	apiLimit := middleware.RateLimiterMiddleware(
		middleware.NewRateLimitStore(s.Redis, time.Second, uint(max(s.Cfg.Server.RateLimitPerSec, 1))), "api")
	formLimiter := middleware.RateLimiterMiddleware(
		middleware.NewRateLimitStore(s.Redis, formWindow, formLimit), "form")
	requireAuth := []gin.HandlerFunc{
		middleware.RequireAuth(s.DB, s.Tokens),
		middleware.JwtBlacklistCheck(s.Blacklist),
	}
	adminOnly := middleware.CheckRole(model.RoleAdmin)
	bodyLimit := middleware.SizeLimit(max(s.Cfg.Server.MaxMultipartBytes, application.MaxSubmissionBytes()))
	imageLimit := middleware.SizeLimit((model.MaxGalleryImages + 1) * upload.ImageSize)

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/uploads/*filepath", files.GetFile)

	api := r.Group("/api", apiLimit)
	{
		authRoute := api.Group("/auth")
		{
			authRoute.POST("/login", formLimiter, authHandler.Login)
			authRoute.POST("/logout", append(requireAuth, authHandler.Logout)...)
			authRoute.GET("/me", append(requireAuth, authHandler.Me)...)
		}

		careerRoute := api.Group("/careers")
		{
			careerRoute.GET("", careers.ListActive)
			careerRoute.GET("/featured", careers.ListFeatured)
			careerRoute.GET("/filters", careers.ListFilters)
			careerRoute.GET("/:id", careers.GetActiveByID)
			careerRoute.POST("/:id/apply", formLimiter, bodyLimit, applications.Submit)
		}
		api.GET("/applications/:id/status", applications.GetStatus)
		api.POST("/contacts", formLimiter, contacts.Submit)

		api.GET("/clients", clients.ListActive)
		api.GET("/clients/:id", clients.GetActiveByID)
		api.GET("/certificates", certificates.ListActive)
		api.GET("/certificates/:id", certificates.GetActiveByID)
		api.GET("/companies", companies.ListActive)
		api.GET("/companies/parent", companies.GetParent)
		api.GET("/companies/:id", companies.GetActiveByID)
		api.GET("/projects", projects.ListPublic)
		api.GET("/projects/:id", projects.GetPublicByID)

		adminRoute := api.Group("/admin", requireAuth...)
		adminRoute.Use(middleware.CheckRole(model.RoleAdmin, model.RoleHR))
		{
			adminRoute.GET("/dashboard", adminController.GetOverview)

			users := adminRoute.Group("/users", adminOnly)
			{
				users.GET("", authHandler.ListUsers)
				users.POST("", authHandler.CreateUser)
			}

			careerAdmin := adminRoute.Group("/careers")
			{
				careerAdmin.GET("", careers.List)
				careerAdmin.GET("/:id", careers.GetByID)
				careerAdmin.POST("", careers.Create)
				careerAdmin.PUT("/:id", careers.Update)
				careerAdmin.PATCH("/:id/status", careers.UpdateStatus)
				careerAdmin.DELETE("/:id", adminOnly, careers.Delete)
			}

			applicationAdmin := adminRoute.Group("/applications")
			{
				applicationAdmin.GET("", applications.List)
				applicationAdmin.GET("/statistics", applications.GetStatistics)
				applicationAdmin.GET("/:id", applications.GetByID)
				applicationAdmin.PATCH("/:id/status", applications.UpdateStatus)
				applicationAdmin.POST("/:id/notes", applications.AddNote)
				applicationAdmin.POST("/:id/schedule-interview", applications.ScheduleInterview)
				applicationAdmin.GET("/:id/documents/:documentType", applications.DownloadDocument)
				applicationAdmin.DELETE("/:id", adminOnly, applications.Delete)
			}

			clientAdmin := adminRoute.Group("/clients")
			{
				clientAdmin.GET("", clients.List)
				clientAdmin.GET("/:id", clients.GetByID)
				clientAdmin.POST("", imageLimit, clients.Create)
				clientAdmin.PUT("/:id", imageLimit, clients.Update)
				clientAdmin.PATCH("/:id/project-count", clients.UpdateProjectCount)
				clientAdmin.DELETE("/:id", adminOnly, clients.Delete)
			}

			contactAdmin := adminRoute.Group("/contacts")
			{
				contactAdmin.GET("", contacts.List)
				contactAdmin.PATCH("/bulk", contacts.Bulk)
				contactAdmin.GET("/:id", contacts.GetByID)
				contactAdmin.PATCH("/:id/status", contacts.UpdateStatus)
				contactAdmin.POST("/:id/notes", contacts.AddNote)
				contactAdmin.POST("/:id/reply", contacts.Reply)
				contactAdmin.PUT("/:id/tags", contacts.UpdateTags)
				contactAdmin.DELETE("/:id", adminOnly, contacts.Delete)
			}

			certificateAdmin := adminRoute.Group("/certificates")
			{
				certificateAdmin.GET("", certificates.List)
				certificateAdmin.GET("/:id", certificates.GetByID)
				certificateAdmin.POST("", imageLimit, certificates.Create)
				certificateAdmin.PUT("/:id", imageLimit, certificates.Update)
				certificateAdmin.DELETE("/:id", adminOnly, certificates.Delete)
			}

			companyAdmin := adminRoute.Group("/companies")
			{
				companyAdmin.GET("", companies.List)
				companyAdmin.GET("/:id", companies.GetByID)
				companyAdmin.POST("", imageLimit, companies.Create)
				companyAdmin.PUT("/:id", imageLimit, companies.Update)
				companyAdmin.DELETE("/:id", adminOnly, companies.Delete)
			}

			projectAdmin := adminRoute.Group("/projects")
			{
				projectAdmin.GET("", projects.List)
				projectAdmin.GET("/:id", projects.GetByID)
				projectAdmin.POST("", imageLimit, projects.Create)
				projectAdmin.PUT("/:id", imageLimit, projects.Update)
				projectAdmin.DELETE("/:id/gallery/:index", projects.RemoveGalleryImage)
				projectAdmin.DELETE("/:id", adminOnly, projects.Delete)
			}
		}
	}

	return r
}

func (s *MyServer) healthHandler(c *gin.Context) {
	stats := s.DB.Health()
	status := http.StatusOK
	if stats["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, stats)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
