package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panic into the API's 500 envelope. The panic value is only
// exposed to clients when exposeError is set.
func Recovery(logger *zap.Logger, exposeError bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestID, _ := GetRequestIDFromContext(c)
		logger.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("request_id", requestID),
			zap.String("path", c.Request.URL.Path),
			zap.Stack("stack"),
		)

		body := gin.H{"success": false, "message": "Something went wrong!"}
		if exposeError {
			body["error"] = fmt.Sprint(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
