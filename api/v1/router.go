package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tenantcfg/api/v1/applications"
	"tenantcfg/api/v1/auth"
	"tenantcfg/api/v1/controls"
	"tenantcfg/api/v1/middleware"
	"tenantcfg/api/v1/pages"
	"tenantcfg/api/v1/tenantdomains"
	"tenantcfg/api/v1/tenants"
	"tenantcfg/api/v1/themes"
	"tenantcfg/internal/config"
	"tenantcfg/internal/events"
	"tenantcfg/internal/httpx"
	"tenantcfg/internal/tenantdomain"
	"tenantcfg/internal/verification"
)

// Deps carries the shared services the routes are built on
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Registry *tenantdomain.Service
	Confirms *verification.ConfirmStore
	Events   *events.Publisher
}

// SetupRouter sets up the API v1 routes
func SetupRouter(r *gin.Engine, deps *Deps) {
	domainsHandler := tenantdomains.NewHandler(deps.Registry, deps.Confirms, deps.Events)

	v1 := r.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.GET("/ping", pingHandler)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/login", auth.LoginHandler(deps.DB, deps.Config))
		}

		// The edge resolves hosts and tenants confirm challenge emails
		// without credentials.
		v1.GET("/tenant-domains/domain/:domain", domainsHandler.Resolve)
		v1.POST("/tenant-domains/email-confirmation", domainsHandler.EmailConfirmation)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/me", meHandler)

			domainsGroup := protected.Group("/tenant-domains")
			{
				domainsGroup.POST("", domainsHandler.Register)
				domainsGroup.GET("/tenant/:tenantId", domainsHandler.ListByTenant)
				domainsGroup.GET("/tenant/:tenantId/default", domainsHandler.GetDefault)
				domainsGroup.GET("/tenant/:tenantId/primary", domainsHandler.GetPrimary)
				domainsGroup.GET("/tenant/:tenantId/stats", domainsHandler.Stats)

				domainsGroup.GET("/tenant/:tenantId/domain/:domain", domainsHandler.Get)
				domainsGroup.PATCH("/tenant/:tenantId/domain/:domain", domainsHandler.Update)
				domainsGroup.DELETE("/tenant/:tenantId/domain/:domain", domainsHandler.Remove)
				domainsGroup.GET("/tenant/:tenantId/domain/:domain/verification", domainsHandler.Instructions)
				domainsGroup.PATCH("/tenant/:tenantId/domain/:domain/verify", domainsHandler.Verify)
				domainsGroup.PATCH("/tenant/:tenantId/domain/:domain/set-default", domainsHandler.SetDefault)
				domainsGroup.PATCH("/tenant/:tenantId/domain/:domain/set-primary", domainsHandler.SetPrimary)
			}

			tenantsHandler := tenants.NewHandler(deps.DB)
			tenantsGroup := protected.Group("/tenants")
			{
				tenantsGroup.GET("", tenantsHandler.List)
				tenantsGroup.POST("", tenantsHandler.Create)
				tenantsGroup.GET("/:tenantId", tenantsHandler.Get)
				tenantsGroup.PATCH("/:tenantId", tenantsHandler.Update)
				tenantsGroup.DELETE("/:tenantId", tenantsHandler.Delete)
			}

			appsHandler := applications.NewHandler(deps.DB)
			appsGroup := protected.Group("/applications")
			{
				appsGroup.GET("", appsHandler.List)
				appsGroup.POST("", appsHandler.Create)
				appsGroup.GET("/:tenantId/:applicationId", appsHandler.Get)
				appsGroup.PATCH("/:tenantId/:applicationId", appsHandler.Update)
				appsGroup.DELETE("/:tenantId/:applicationId", appsHandler.Delete)
			}

			pagesHandler := pages.NewHandler(deps.DB)
			pagesGroup := protected.Group("/pages")
			{
				pagesGroup.GET("", pagesHandler.List)
				pagesGroup.POST("", pagesHandler.Create)
				pagesGroup.GET("/:tenantId/:pageId", pagesHandler.Get)
				pagesGroup.PATCH("/:tenantId/:pageId", pagesHandler.Update)
				pagesGroup.DELETE("/:tenantId/:pageId", pagesHandler.Delete)
			}

			controlsHandler := controls.NewHandler(deps.DB)
			controlsGroup := protected.Group("/controls")
			{
				controlsGroup.GET("", controlsHandler.List)
				controlsGroup.POST("", controlsHandler.Create)
				controlsGroup.GET("/:tenantId/:controlId", controlsHandler.Get)
				controlsGroup.PATCH("/:tenantId/:controlId", controlsHandler.Update)
				controlsGroup.DELETE("/:tenantId/:controlId", controlsHandler.Delete)
			}

			themesHandler := themes.NewHandler(deps.DB)
			themesGroup := protected.Group("/themes")
			{
				themesGroup.GET("", themesHandler.List)
				themesGroup.POST("", themesHandler.Create)
				themesGroup.GET("/:tenantId/:themeId", themesHandler.Get)
				themesGroup.PATCH("/:tenantId/:themeId", themesHandler.Update)
				themesGroup.DELETE("/:tenantId/:themeId", themesHandler.Delete)
			}
		}
	}
}

// pingHandler handles the ping request using unified response
func pingHandler(c *gin.Context) {
	httpx.OK(c, gin.H{
		"pong": true,
	})
}

// meHandler returns current user information
func meHandler(c *gin.Context) {
	uid, _ := c.Get("uid")
	username, _ := c.Get("username")
	role, _ := c.Get("role")

	httpx.OK(c, gin.H{
		"uid":      uid,
		"username": username,
		"role":     role,
	})
}
