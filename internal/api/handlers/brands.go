package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/repository"
	"github.com/fashionhive/storefront/internal/service"
	"github.com/fashionhive/storefront/pkg/errors"
)

// HandleListBrands handles GET /api/brands
func HandleListBrands(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalogService := service.NewCatalogService(repos, logger)
		brands, err := catalogService.ListBrands(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list brands", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Error fetching brands", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(brands),
			"data":    brands,
		})
	}
}

// HandleListCategories handles GET /api/brands/categories
func HandleListCategories(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		catalogService := service.NewCatalogService(repos, logger)
		categories, err := catalogService.ListCategories(c.Request.Context())
		if err != nil {
			logger.Error("Failed to list categories", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Error fetching categories", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(categories),
			"data":    categories,
		})
	}
}

// HandleGetBrand handles GET /api/brands/:brandName
func HandleGetBrand(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		brandName := c.Param("brandName")

		catalogService := service.NewCatalogService(repos, logger)
		brand, err := catalogService.GetBrand(c.Request.Context(), brandName)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				respondError(c, http.StatusNotFound, "Brand not found", nil)
				return
			}
			logger.Error("Failed to get brand", zap.Error(err), zap.String("brand", brandName))
			respondError(c, http.StatusInternalServerError, "Error fetching brand", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": brand})
	}
}
