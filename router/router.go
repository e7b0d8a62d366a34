// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mlanzi/spese-backend/config"
	"github.com/mlanzi/spese-backend/handlers"
	"github.com/mlanzi/spese-backend/middleware"
)

// Dependencies carries everything the router needs to register routes.
type Dependencies struct {
	Config *config.Config

	CategoryHandler *handlers.CategoryHandler
	CustomerHandler *handlers.CustomerHandler
	ProjectHandler  *handlers.ProjectHandler
	VehicleHandler  *handlers.VehicleHandler
	ExpenseHandler  *handlers.ExpenseHandler
	TripHandler     *handlers.TripHandler
	UploadHandler   *handlers.UploadHandler
	StatsHandler    *handlers.StatsHandler
	ExportHandler   *handlers.ExportHandler
	HealthHandler   *handlers.HealthHandler

	// LocalUploadsDir, when non-empty, mounts /uploads as a static route
	// serving locally stored receipt images.
	LocalUploadsDir string
}

// SetupRouter builds the gin engine with middleware and all API routes.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(&deps.Config.Server))
	r.Use(middleware.ErrorHandler())

	if deps.LocalUploadsDir != "" {
		r.Static("/uploads", deps.LocalUploadsDir)
	}

	api := r.Group("/api")
	{
		api.GET("/health", deps.HealthHandler.Check)

		api.GET("/categorie", deps.CategoryHandler.List)
		api.POST("/categorie", deps.CategoryHandler.Create)

		api.GET("/clienti", deps.CustomerHandler.List)
		api.POST("/clienti", deps.CustomerHandler.Create)
		api.GET("/clienti/:id", deps.CustomerHandler.Get)
		api.PUT("/clienti/:id", deps.CustomerHandler.Update)
		api.DELETE("/clienti/:id", deps.CustomerHandler.Delete)

		api.GET("/progetti", deps.ProjectHandler.List)
		api.POST("/progetti", deps.ProjectHandler.Create)
		api.PUT("/progetti/:id", deps.ProjectHandler.Update)

		api.GET("/veicoli", deps.VehicleHandler.List)
		api.POST("/veicoli", deps.VehicleHandler.Create)
		api.PUT("/veicoli/:id", deps.VehicleHandler.Update)
		api.DELETE("/veicoli/:id", deps.VehicleHandler.Delete)

		api.GET("/spese", deps.ExpenseHandler.List)
		api.POST("/spese", deps.ExpenseHandler.Create)
		api.PUT("/spese/:id", deps.ExpenseHandler.Update)
		api.DELETE("/spese/:id", deps.ExpenseHandler.Delete)

		api.GET("/chilometriche", deps.TripHandler.List)
		api.POST("/chilometriche", deps.TripHandler.Create)
		api.PUT("/chilometriche/:id", deps.TripHandler.Update)
		api.DELETE("/chilometriche/:id", deps.TripHandler.Delete)

		api.POST("/upload", deps.UploadHandler.Upload)

		api.GET("/stats/dashboard", deps.StatsHandler.Dashboard)
		api.GET("/stats/mensili", deps.StatsHandler.Monthly)

		api.POST("/export/excel", deps.ExportHandler.Excel)
	}

	return r
}
