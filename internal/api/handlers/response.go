package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError writes the failure envelope. The underlying error is only
// included while gin runs in debug mode.
func respondError(c *gin.Context, status int, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil && gin.IsDebugging() {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

// HandleNotFound handles requests no route matched
func HandleNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	}
}
