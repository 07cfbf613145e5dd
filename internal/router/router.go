package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/fitsync-pro/backend/internal/api"
	"github.com/pageza/fitsync-pro/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(svc api.Services, gatherer prometheus.Gatherer, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(middleware.CORS(allowedOrigins))

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api.RegisterRoutes(router, svc)

	return router
}
