package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/api/handlers"
	"github.com/fashionhive/storefront/internal/api/middleware"
	"github.com/fashionhive/storefront/internal/config"
	"github.com/fashionhive/storefront/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger, !cfg.IsProduction()))
	router.Use(loggingMiddleware(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	health := handlers.HandleHealth(cfg.Database.DBName)
	router.GET("/health", health)

	api := router.Group("/api")
	{
		api.GET("/health", health)

		brands := api.Group("/brands")
		{
			brands.GET("", handlers.HandleListBrands(repos, logger))
			brands.GET("/categories", handlers.HandleListCategories(repos, logger))
			brands.GET("/:brandName", handlers.HandleGetBrand(repos, logger))
		}

		products := api.Group("/products")
		{
			products.GET("", handlers.HandleListProducts(repos, logger))
			products.GET("/featured", handlers.HandleFeaturedProducts(repos, logger))
			products.GET("/brand/:brandName", handlers.HandleListBrandProducts(repos, logger))
			products.GET("/:id", handlers.HandleGetProduct(repos, logger))
		}
	}

	router.NoRoute(handlers.HandleNotFound())

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		requestID, _ := middleware.GetRequestIDFromContext(c)
		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", requestID),
		)
	}
}
