package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func corsRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/website-ideas", nil)
	req.Header.Set("Origin", origin)
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_AllowList(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/api/website-ideas", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := corsRequest(r, http.MethodGet, "http://localhost:3000")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(r, http.MethodGet, "http://evil.example.com")
	require.Equal(t, http.StatusForbidden, w.Code)

	w = corsRequest(r, http.MethodOptions, "http://localhost:3000")
	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.GET("/api/website-ideas", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := corsRequest(r, http.MethodGet, "http://anywhere.example.com")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
