package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDefaultProfilingConfig(t *testing.T) {
	cfg := DefaultProfilingConfig()

	assert.True(t, cfg.Enabled)
	assert.Contains(t, cfg.SkipPaths, "/health")
	assert.Contains(t, cfg.SkipPaths, "/openapi.json")
	assert.Contains(t, cfg.SkipPathPrefixes, "/swagger")
}

func TestProfiling_LabelsRequestContext(t *testing.T) {
	r := gin.New()
	r.Use(Profiling())

	labels := map[string]string{}
	r.GET("/api/v1/profiles/:id/recipe-matches", func(c *gin.Context) {
		for _, key := range []string{"method", "route", "resource"} {
			if v, ok := pprof.Label(c.Request.Context(), key); ok {
				labels[key] = v
			}
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/profiles/42/recipe-matches", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{
		"method":   http.MethodGet,
		"route":    "/api/v1/profiles/:id/recipe-matches",
		"resource": "profiles",
	}, labels)
}

func TestProfiling_SkipsHealthAndDocs(t *testing.T) {
	r := gin.New()
	r.Use(Profiling())

	labelled := map[string]bool{}
	handler := func(c *gin.Context) {
		_, ok := pprof.Label(c.Request.Context(), "route")
		labelled[c.Request.URL.Path] = ok
		c.Status(http.StatusOK)
	}
	r.GET("/health", handler)
	r.GET("/swagger/*any", handler)

	for _, path := range []string{"/health", "/swagger/index.html"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, labelled[path], path)
	}
}

func TestProfiling_Disabled(t *testing.T) {
	r := gin.New()
	r.Use(ProfilingWithConfig(ProfilingConfig{Enabled: false}))

	called := false
	r.GET("/api/v1/recipes", func(c *gin.Context) {
		_, ok := pprof.Label(c.Request.Context(), "route")
		assert.False(t, ok)
		called = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil))
	assert.True(t, called)
}

func TestResourceFromRoute(t *testing.T) {
	tests := []struct {
		route    string
		expected string
	}{
		{"/api/v1/pantry-items", "pantry-items"},
		{"/api/v1/pantry-items/stats", "pantry-items"},
		{"/api/v1/recipes/:id", "recipes"},
		{"/api/v2/meal-plans/:id", "meal-plans"},
		{"/health", "health"},
		{"/swagger/*any", "swagger"},
		{"/api/v1", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.expected, resourceFromRoute(tt.route))
		})
	}
}

func TestIsVersionSegment(t *testing.T) {
	assert.True(t, isVersionSegment("v1"))
	assert.True(t, isVersionSegment("V12"))
	assert.False(t, isVersionSegment("v"))
	assert.False(t, isVersionSegment("vx"))
	assert.False(t, isVersionSegment("recipes"))
}
