package handlers

import (
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/logger"
	"github.com/NabeelSaddique/Nano-Particle-Simulation/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Embedded lab page
	h.registerPageRoutes(router)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// Live recompute channel (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerSimulationRoutes(api)
	}
}

func (h *Handler) registerSimulationRoutes(api *gin.RouterGroup) {
	sim := api.Group("/simulation")
	{
		sim.GET("/defaults", h.getDefaults)
		// Body example: {"max_concentration":100,"concentration_step":10,"decay_rate":0.05}
		sim.POST("/run", h.runSimulation)

		export := sim.Group("/export")
		{
			export.GET("/applications.csv", h.exportApplicationsCSV)
			export.GET("/degradation.csv", h.exportDegradationCSV)
			export.GET("/workbook.xlsx", h.exportWorkbook)
		}

		sim.GET("/charts/:chart", h.getChart)
	}
}
