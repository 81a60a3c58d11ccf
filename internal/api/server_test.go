package api_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"autobuilder/internal/api"
	"autobuilder/internal/api/handler/v1handler"
	mockautofix "autobuilder/internal/autofix/mock"
	mockbuilds "autobuilder/internal/builds/mock"
	mockcatalog "autobuilder/internal/catalog/mock"
	"autobuilder/internal/health"
	mockhealth "autobuilder/internal/health/mock"
	mockwebhook "autobuilder/internal/webhook/mock"
	"autobuilder/pkg/logger"
	"autobuilder/pkg/ratelimit"
	mockratelimit "autobuilder/pkg/ratelimit/mock"
	"autobuilder/pkg/webshell"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func publicKeyPEM(t *testing.T) string {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

type fixture struct {
	health  *mockhealth.MockChecker
	limiter *mockratelimit.MockLimiter
	deps    api.Deps
	opts    api.Options
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		health:  mockhealth.NewMockChecker(ctrl),
		limiter: mockratelimit.NewMockLimiter(ctrl),
	}
	f.deps = api.Deps{
		Deps: v1handler.Deps{
			Catalog:      mockcatalog.NewMockCatalog(ctrl),
			Builds:       mockbuilds.NewMockService(ctrl),
			AutoFix:      mockautofix.NewMockService(ctrl),
			Webhook:      mockwebhook.NewMockService(ctrl),
			Health:       f.health,
			Cache:        webshell.DefaultConfig(),
			Version:      "0.1.0",
			Environment:  "test",
			MaxBodyBytes: 1024,
		},
		Limiter: f.limiter,
	}
	f.opts = api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)},
		RequestTimeout:    5 * time.Second,
		MetricsPath:       "/metrics",
		CORSOrigins:       []string{"*"},
		HSTS:              true,
	}

	return f
}

func (f *fixture) handler(t *testing.T) http.Handler {
	t.Helper()
	h, err := api.NewHandler(f.deps, f.opts)
	require.NoError(t, err)

	return h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func loadSpec(t *testing.T) *openapi3.T {
	t.Helper()
	doc, err := openapi3.NewLoader().LoadFromData(api.V1Spec)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))

	return doc
}

func TestV1Spec_Valid(t *testing.T) {
	doc := loadSpec(t)
	require.Equal(t, "GitHub Auto Builder API", doc.Info.Title)
}

func TestV1Spec_DocumentsEveryRoute(t *testing.T) {
	doc := loadSpec(t)

	h, err := v1handler.New(v1handler.Deps{Cache: webshell.DefaultConfig()})
	require.NoError(t, err)
	sec, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicKeyPEM(t)})
	require.NoError(t, err)

	err = chi.Walk(h.Routes(sec), func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		item := doc.Paths.Value(route)
		require.NotNil(t, item, "route %s is not documented", route)
		require.NotNil(t, item.GetOperation(method), "%s %s is not documented", method, route)

		return nil
	})
	require.NoError(t, err)
}

func TestNewHandler_ServesSpecAndRoot(t *testing.T) {
	f := newFixture(t)
	h := f.handler(t)

	rec := get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Equal(t, api.V1Spec, rec.Body.Bytes())

	rec = get(h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	var root v1handler.RootInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &root))
	require.Equal(t, "active", root.Status)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestNewHandler_HealthSkipsRateLimit(t *testing.T) {
	f := newFixture(t)
	h := f.handler(t)

	f.health.EXPECT().Check(gomock.Any()).Return(health.Report{
		Status:     health.StatusHealthy,
		Components: map[string]health.Component{},
		Timestamp:  time.Now(),
	})

	rec := get(h, "/api/health/")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_RateLimitsAPI(t *testing.T) {
	f := newFixture(t)
	h := f.handler(t)

	f.limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{
		Allowed:    false,
		Limit:      100,
		ResetAt:    time.Now().Add(time.Minute),
		RetryAfter: 30 * time.Second,
	}, nil)

	rec := get(h, "/api/ui/shell")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "30", rec.Header().Get("Retry-After"))
}

func TestNewHandler_StaticDir(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>app</html>"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.css"), []byte("body{}"), 0o600))
	f.opts.StaticDir = dir
	h := f.handler(t)

	rec := get(h, "/builds")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "app"))

	rec = get(h, "/app.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
}

func TestNewHandler_StaticDirWithoutIndex(t *testing.T) {
	f := newFixture(t)
	f.opts.StaticDir = t.TempDir()

	_, err := api.NewHandler(f.deps, f.opts)
	require.ErrorIs(t, err, webshell.ErrNoIndex)
}

func TestNewHandler_MissingPublicKey(t *testing.T) {
	f := newFixture(t)
	f.opts.SecHandlerOptions = &v1handler.SecHandlerOptions{}

	_, err := api.NewHandler(f.deps, f.opts)
	require.ErrorIs(t, err, v1handler.ErrNoPublicKey)
}
