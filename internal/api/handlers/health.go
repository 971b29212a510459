package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealth handles GET /health and GET /api/health
func HandleHealth(database string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"message":  "FashionHive API is running",
			"database": database,
		})
	}
}
