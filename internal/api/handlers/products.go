package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fashionhive/storefront/internal/repository"
	"github.com/fashionhive/storefront/internal/service"
	"github.com/fashionhive/storefront/pkg/errors"
)

type productPageResponse struct {
	Success bool `json:"success"`
	*service.ProductPage
}

type brandProductPageResponse struct {
	Success bool `json:"success"`
	*service.BrandProductPage
}

// HandleListProducts handles GET /api/products
func HandleListProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query service.ProductQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid query parameters", err)
			return
		}

		catalogService := service.NewCatalogService(repos, logger)
		page, err := catalogService.ListProducts(c.Request.Context(), query)
		if err != nil {
			logger.Error("Failed to list products", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Error fetching products", err)
			return
		}

		c.JSON(http.StatusOK, productPageResponse{Success: true, ProductPage: page})
	}
}

// HandleListBrandProducts handles GET /api/products/brand/:brandName
func HandleListBrandProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		brandName := c.Param("brandName")

		var query service.ProductQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid query parameters", err)
			return
		}

		catalogService := service.NewCatalogService(repos, logger)
		page, err := catalogService.ListBrandProducts(c.Request.Context(), brandName, query)
		if err != nil {
			if notFound, ok := err.(*errors.ErrNotFound); ok {
				available := notFound.Available
				if available == nil {
					available = []string{}
				}
				c.JSON(http.StatusNotFound, gin.H{
					"success":         false,
					"message":         fmt.Sprintf("Brand '%s' not found", brandName),
					"availableBrands": available,
				})
				return
			}
			logger.Error("Failed to list brand products", zap.Error(err), zap.String("brand", brandName))
			respondError(c, http.StatusInternalServerError, "Error fetching products", err)
			return
		}

		c.JSON(http.StatusOK, brandProductPageResponse{Success: true, BrandProductPage: page})
	}
}

// HandleFeaturedProducts handles GET /api/products/featured
func HandleFeaturedProducts(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query service.FeaturedQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondError(c, http.StatusBadRequest, "Invalid query parameters", err)
			return
		}

		catalogService := service.NewCatalogService(repos, logger)
		products, err := catalogService.FeaturedProducts(c.Request.Context(), query.Limit)
		if err != nil {
			logger.Error("Failed to get featured products", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "Error fetching featured products", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(products),
			"data":    products,
		})
	}
}

// HandleGetProduct handles GET /api/products/:id
func HandleGetProduct(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		catalogService := service.NewCatalogService(repos, logger)
		product, err := catalogService.GetProduct(c.Request.Context(), id)
		if err != nil {
			switch e := err.(type) {
			case *errors.ErrValidation:
				respondError(c, http.StatusBadRequest, e.Message, nil)
			case *errors.ErrNotFound:
				respondError(c, http.StatusNotFound, "Product not found", nil)
			default:
				logger.Error("Failed to get product", zap.Error(err), zap.String("product_id", id))
				respondError(c, http.StatusInternalServerError, "Error fetching product", err)
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
	}
}
