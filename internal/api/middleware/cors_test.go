package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fashionhive/storefront/internal/config"
)

func TestCORS_EmptyOriginsFallBackToDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)

	assert.Equal(t, []string{config.DefaultCORSOrigin}, corsConfig(nil).AllowOrigins)

	var handler gin.HandlerFunc
	require.NotPanics(t, func() { handler = CORS(nil) })

	router := gin.New()
	router.Use(handler)
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", config.DefaultCORSOrigin)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, config.DefaultCORSOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}
