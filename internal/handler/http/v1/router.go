package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/fire_dashboard/internal/observability"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/hello", h.hello)
	api.GET("/stats", h.getStats)
	api.GET("/metrics/calls_by_day", h.getCallsByDay)

	// Маршруты для инцидентов
	incidents := api.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.POST("", h.createIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id", h.patchIncident)
	}

	stations := api.Group("/stations")
	{
		stations.GET("", h.listStations)
		stations.GET("/:id", h.getStation)
	}

	firefighters := api.Group("/firefighters")
	{
		firefighters.GET("", h.listFirefighters)
		firefighters.POST("", h.createFirefighter)
	}
}

// NewRouter собирает gin-движок: middleware, API, health-check, метрики и Swagger UI
func NewRouter(h *Handler, metrics *observability.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		MetricsMiddleware(metrics),
		LoggerMiddleware(h.logger),
	)

	h.RegisterRoutes(router.Group("/api"))

	// Маршрут Health-check
	router.GET("/system/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
