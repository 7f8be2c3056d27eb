package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/memory"
	"github.com/nathan-pham/gradcap-mvp/internal/infrastructure/observability"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/handlers"
	"github.com/nathan-pham/gradcap-mvp/internal/interfaces/http/rest/middleware"
	"github.com/nathan-pham/gradcap-mvp/internal/service/admin"
	service "github.com/nathan-pham/gradcap-mvp/internal/service/pathway"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T, secret string) http.Handler {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewNodeStore(pathway.Catalog())
	accessor := service.NewAccessor(store, logger)
	collector := observability.NewCollector("test")

	rt := NewRouter(
		handlers.NewSiteHandler(accessor, logger),
		handlers.NewAdminHandler(admin.NewRegistry(accessor, time.Hour, logger), handlers.CookieConfig{Name: "session"}, logger),
		handlers.NewNodeHandler(store, appErrors.NewErrorHandler(logger, false), logger),
		handlers.NewHealthHandler(store, logger),
		collector,
		Options{
			AllowedOrigins: []string{"http://localhost:3000"},
			JWT:            middleware.JWTConfig{Secret: secret},
			MetricsPath:    "/metrics",
		},
		logger,
	)
	return rt.Setup()
}

func signed(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "editor",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return raw
}

func TestRouterPublicRoutes(t *testing.T) {
	router := newTestRouter(t, testSecret)

	for _, path := range []string{"/", "/health", "/ready", "/api/v1/nodes", "/api/v1/icons", "/api/v1/swagger.json"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("Content-Type"), path)
	}
}

func TestRouterProtectsAdminAndWrites(t *testing.T) {
	router := newTestRouter(t, testSecret)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/nodes/degree",
		strings.NewReader(`{"title":"T","description":"D","position":1}`)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signed(t))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pathway Admin")
}

func TestRouterWithoutSecretIsOpen(t *testing.T) {
	router := newTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterCORSPreflight(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/nodes", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(t, "")

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_http_requests_total{method="GET",route="/health",status="200"}`)
}
