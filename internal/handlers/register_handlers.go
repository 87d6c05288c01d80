package handlers

import (
	"net/http"

	"github.com/Sachin796/Worktopia/cmd/docs"
	portssvc "github.com/Sachin796/Worktopia/internal/core/ports/services"
	"github.com/Sachin796/Worktopia/internal/middleware"
	"github.com/Sachin796/Worktopia/internal/platform/config"
	"github.com/Sachin796/Worktopia/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	setupAPIRoutes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group. Reads are public; writes carry the auth middleware per route.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	api := r.Group("/api", middleware.SessionMiddleware())
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	registerAuthRoutes(api, services)
	registerUserRoutes(api, auth, services.User)
	registerBookingRoutes(api, auth, services.Booking, posthogClient)
	registerWorkspaceRoutes(api, auth, services)
	registerSearchRoutes(api, services.Search)
	registerLocationRoutes(api, auth, services.Location)
	registerFeatureRoutes(api, services.Feature)
	registerUploadRoutes(api, auth, services.Upload)
	registerGeocodeRoutes(api, services.Geocoder)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
