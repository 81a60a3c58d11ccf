package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autobuilder/pkg/controller"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/ratelimit"
	mockratelimit "autobuilder/pkg/ratelimit/mock"
	mockstorage "autobuilder/pkg/storage/mock"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestWithSecurityHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.WithSecurityHeaders(true)(http.HandlerFunc(okHandler)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	require.Equal(t, "1; mode=block", rec.Header().Get("X-XSS-Protection"))
	require.Equal(t, "max-age=31536000; includeSubDomains", rec.Header().Get("Strict-Transport-Security"))

	rec = httptest.NewRecorder()
	controller.WithSecurityHeaders(false)(http.HandlerFunc(okHandler)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}

func TestWithRecover(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		controller.WithRecover(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"INTERNAL"`)
}

func TestWithRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	limiter := mockratelimit.NewMockLimiter(ctrl)
	reset := time.Now().Add(90 * time.Second).Truncate(time.Second)
	exempt := func(r *http.Request) bool { return r.URL.Path == "/api/health/" }
	handler := controller.WithRateLimit(limiter, exempt)(http.HandlerFunc(okHandler))

	t.Run("allowed", func(t *testing.T) {
		limiter.EXPECT().Allow(gomock.Any(), "1.2.3.4").
			Return(ratelimit.Result{Allowed: true, Limit: 100, Remaining: 99, ResetAt: reset}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/builds", nil)
		req.RemoteAddr = "1.2.3.4:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "99", rec.Header().Get("X-RateLimit-Remaining"))
		require.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
	})

	t.Run("rejected", func(t *testing.T) {
		limiter.EXPECT().Allow(gomock.Any(), "1.2.3.4").
			Return(ratelimit.Result{Limit: 100, ResetAt: reset, RetryAfter: 89500 * time.Millisecond}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/builds", nil)
		req.RemoteAddr = "1.2.3.4:5555"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "90", rec.Header().Get("Retry-After"))
		require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("exempt", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("limiter failure lets requests through", func(t *testing.T) {
		limiter.EXPECT().Allow(gomock.Any(), gomock.Any()).Return(ratelimit.Result{}, errors.New("redis down"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestWithMetrics(t *testing.T) {
	r := chi.NewRouter()
	r.Use(controller.WithMetrics)
	r.Get("/api/builds/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/builds/42", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestWithAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mockstorage.NewMockAllStorage(ctrl)
	userID := domain.UserID(uuid.New())
	handler := controller.WithAudit(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		controller.SetAuditUser(r.Context(), userID)
		w.WriteHeader(http.StatusNotFound)
	}))

	stored := make(chan domain.AuditLog, 1)
	store.EXPECT().StoreAuditLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log domain.AuditLog) (*domain.AuditLog, error) {
			stored <- log

			return &log, nil
		})

	req := httptest.NewRequest(http.MethodDelete, "/api/repositories/abc?force=1", nil)
	req.Header.Set("User-Agent", "curl/8")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	select {
	case log := <-stored:
		require.Equal(t, domain.AuditAPIRequest, log.Action)
		require.Equal(t, domain.ActorUser, log.ActorType)
		require.Equal(t, userID.String(), log.ActorID)
		require.Equal(t, "DELETE /api/repositories/abc", log.Description)
		require.False(t, log.Success)
		require.Equal(t, "Not Found", log.ErrorMessage)
		require.Equal(t, "curl/8", log.UserAgent)
		require.Equal(t, http.StatusNotFound, log.Details["status_code"])
	case <-time.After(2 * time.Second):
		t.Fatal("audit entry was not stored")
	}

	// health checks and non api paths are not audited
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health/database", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/builds", nil))
}

func TestPprofRouter(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/debug/pprof", controller.PprofRouter())

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/goroutine"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
