package v1handler

import "net/http"

const (
	apiName      = "GitHub Auto Builder API"
	docsURL      = "/docs/"
	healthURL    = "/api/health/"
	specsURL     = "/specs/v1.yaml"
	statusActive = "active"
)

type RootInfo struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	DocsURL     string `json:"docs_url"`
	HealthCheck string `json:"health_check"`
}

type APIInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Root answers GET / when no web client is configured.
func (h *Handler) Root(*http.Request) (*Response, error) {
	return ok(RootInfo{
		Message:     apiName,
		Version:     h.deps.Version,
		Status:      statusActive,
		DocsURL:     docsURL,
		HealthCheck: healthURL,
	}), nil
}

func (h *Handler) APIInfo(*http.Request) (*Response, error) {
	return ok(APIInfo{
		Name:        apiName,
		Version:     h.deps.Version,
		Environment: h.deps.Environment,
		Description: "Builds linked GitHub repositories on their CI platform and proposes fixes for failed builds.",
		Endpoints: map[string]string{
			"health":       "/api/health",
			"webhooks":     "/api/webhooks",
			"builds":       "/api/builds",
			"repositories": "/api/repositories",
			"integrations": "/api/integrations",
			"ui":           "/api/ui",
			"admin":        "/api/admin",
			"docs":         docsURL,
			"specs":        specsURL,
		},
	}), nil
}
