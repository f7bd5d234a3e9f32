package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swish-api/api/dto/responses"
	"swish-api/api/handlers"
	"swish-api/api/middleware"
	"swish-api/core/body"
	"swish-api/pkg/featureflags"
)

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

func TestNewAPI(t *testing.T) {
	api, router := NewAPI()
	require.NotNil(t, api)
	require.NotNil(t, router)

	info := api.OpenAPI().Info
	assert.Equal(t, "Swish API", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
	assert.NotEmpty(t, info.Description)
}

func TestAPI_OpenAPIEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.oai.openapi+json", w.Header().Get("Content-Type"))
}

func TestAPI_DocsEndpoint(t *testing.T) {
	_, router := NewAPI()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html", w.Header().Get("Content-Type"))
}

func TestAPI_CORSPreflight(t *testing.T) {
	_, router := NewAPI()

	req := httptest.NewRequest(http.MethodOptions, "/teams", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewAPIWithMiddleware(t *testing.T) {
	api, router, limiter := NewAPIWithMiddleware(APIConfig{
		Logger:     nopLogger{},
		RateLimit:  1,
		RateWindow: time.Minute,
	})
	require.NotNil(t, limiter)
	defer limiter.Close()

	handlers.NewTeamsHandler().RegisterRoutes(api)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/teams", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.NotEmpty(t, first.Header().Get(middleware.RequestIDHeader))

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/teams", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewAPIWithMiddleware_RateLimitOff(t *testing.T) {
	_, _, limiter := NewAPIWithMiddleware(APIConfig{})
	assert.Nil(t, limiter)
}

func TestNewAPIWithMiddleware_FlagsReachHandlers(t *testing.T) {
	flags := featureflags.NewStaticManager(map[featureflags.FeatureFlag]bool{
		featureflags.MarkdownEnabled: true,
	})
	api, router, _ := NewAPIWithMiddleware(APIConfig{Flags: flags})
	handlers.NewRenderHandler(body.NewRenderer(), body.NewRenderer(body.WithMarkdown(true))).RegisterRoutes(api)

	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(`{"body":"&lt;p&gt;hello&lt;/p&gt;"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out responses.RenderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.Blocks, 1)
	assert.Equal(t, "hello", out.Blocks[0].Markdown)
}
