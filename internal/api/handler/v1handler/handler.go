// Package v1handler implements the JSON API served under /api.
package v1handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"autobuilder/internal/autofix"
	"autobuilder/internal/builds"
	"autobuilder/internal/catalog"
	"autobuilder/internal/health"
	"autobuilder/internal/webhook"
	"autobuilder/pkg/controller"
	"autobuilder/pkg/serrors"
	"autobuilder/pkg/storage"
	"autobuilder/pkg/webshell"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DefaultMaxBodyBytes bounds request bodies when Deps.MaxBodyBytes is zero.
const DefaultMaxBodyBytes = 5 << 20

// Deps are the services behind the API.
type Deps struct {
	Catalog catalog.Catalog
	Builds  builds.Service
	AutoFix autofix.Service
	Webhook webhook.Service
	Health  health.Checker
	// Audit backs the admin audit trail listing.
	Audit storage.AuditStorage
	// Cache is the compiled service worker configuration of the web client.
	Cache       webshell.Config
	Version     string
	Environment string
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

type Handler struct {
	deps    Deps
	matcher *webshell.Matcher
	now     func() time.Time
}

// Response is the answer of an operation: a status and an optional JSON body.
type Response struct {
	Status int
	Body   any
}

// Operation serves one documented API operation. It returns its response or
// an error; Handle renders either.
type Operation func(r *http.Request) (*Response, error)

func ok(body any) *Response { return &Response{Status: http.StatusOK, Body: body} }

func created(body any) *Response { return &Response{Status: http.StatusCreated, Body: body} }

func noContent() *Response { return &Response{Status: http.StatusNoContent} }

// New validates the cache configuration and returns a Handler.
func New(deps Deps) (*Handler, error) {
	matcher, err := webshell.NewMatcher(deps.Cache)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if deps.MaxBodyBytes <= 0 {
		deps.MaxBodyBytes = DefaultMaxBodyBytes
	}

	return &Handler{deps: deps, matcher: matcher, now: time.Now}, nil
}

// Routes returns the /api router. Repository, integration and admin routes
// require a bearer token checked by sec.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Handle(h.APIInfo))

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.Handle(h.HealthCheck))
		r.Get("/database", h.Handle(h.DatabaseHealth))
		r.Get("/redis", h.Handle(h.RedisHealth))
		r.Get("/details", h.Handle(h.HealthDetails))
	})

	r.Route("/webhooks", func(r chi.Router) {
		r.Post("/github", h.Handle(h.GitHubWebhook))
		r.Get("/events", h.Handle(h.WebhookEvents))
	})

	r.Route("/builds", func(r chi.Router) {
		r.Get("/", h.Handle(h.ListBuilds))
		r.Get("/statistics", h.Handle(h.BuildStatistics))
		r.Get("/{id}", h.Handle(h.GetBuild))
		r.Put("/{id}/logs", h.Handle(h.UpdateBuildLogs))
		r.Post("/{id}/retry", h.Handle(h.RetryBuild))
		r.Get("/{id}/suggestions", h.Handle(h.FixSuggestions))
		r.With(sec.Middleware).Post("/{id}/fix-attempts/{attemptID}/approve", h.Handle(h.ApproveFixAttempt))
	})

	r.Route("/ui", func(r chi.Router) {
		r.Get("/shell", h.Handle(h.Shell))
		r.Get("/cache-rules", h.Handle(h.CacheRules))
		r.Get("/cache-rules/match", h.Handle(h.MatchCacheRule))
	})

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)

		r.Route("/repositories", func(r chi.Router) {
			r.Get("/", h.Handle(h.ListRepositories))
			r.Post("/", h.Handle(h.CreateRepository))
			r.Get("/{id}", h.Handle(h.GetRepository))
			r.Put("/{id}", h.Handle(h.UpdateRepository))
			r.Delete("/{id}", h.Handle(h.DeleteRepository))
			r.Post("/{id}/link", h.Handle(h.LinkRepository))
			r.Get("/{id}/settings", h.Handle(h.RepositorySettings))
		})

		r.Route("/integrations", func(r chi.Router) {
			r.Get("/", h.Handle(h.ListIntegrations))
			r.Post("/", h.Handle(h.CreateIntegration))
			r.Get("/platforms", h.Handle(h.SupportedPlatforms))
			r.Post("/codemagic/setup", h.Handle(h.SetupCodemagic))
			r.Post("/github-actions/setup", h.Handle(h.SetupGitHubActions))
			r.Get("/{id}", h.Handle(h.GetIntegration))
			r.Put("/{id}", h.Handle(h.UpdateIntegration))
			r.Delete("/{id}", h.Handle(h.DeleteIntegration))
			r.Post("/{id}/test", h.Handle(h.TestIntegration))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/audit-logs", h.Handle(h.AuditLogs))
			r.Post("/builds/retry-failed", h.Handle(h.RetryFailedBuilds))
			r.Post("/builds/cleanup", h.Handle(h.CleanupBuilds))
		})
	})

	return r
}

// Handle adapts op to net/http. The request body is capped at
// Deps.MaxBodyBytes before op runs.
func (h *Handler) Handle(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxBodyBytes)
		}

		res, err := op(r)
		if err != nil {
			h.NewError(w, r, err)

			return
		}
		controller.WriteJSON(w, r, res.Status, res.Body)
	}
}

// NewError renders err as the error document with the status of its kind.
func (h *Handler) NewError(w http.ResponseWriter, r *http.Request, err error) {
	controller.WriteError(w, r, err)
}

// decode reads a JSON request body into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return serrors.With(serrors.ErrBadRequest, "request body exceeds %d bytes", tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is empty")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// uuidParam parses a path parameter holding a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}

// optionalUUID parses a query parameter holding a UUID. Empty gives uuid.Nil.
func optionalUUID(r *http.Request, name string) (uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "invalid %s", name)
	}

	return id, nil
}

// uintQuery parses a non-negative integer query parameter. Empty gives 0.
func uintQuery(r *http.Request, name string) (uint, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a non-negative integer", name)
	}

	return uint(n), nil
}

// boolQuery parses an optional boolean query parameter.
func boolQuery(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil //nolint: nilnil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, serrors.With(serrors.ErrBadRequest, "%s must be a boolean", name)
	}

	return &b, nil
}
