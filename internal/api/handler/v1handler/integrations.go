package v1handler

import (
	"net/http"
	"time"

	"autobuilder/internal/catalog"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"

	"github.com/google/uuid"
)

type CreateIntegrationRequest struct {
	RepositoryID string         `json:"repository_id"`
	Platform     string         `json:"platform"`
	Config       map[string]any `json:"config"`
	WebhookURL   string         `json:"webhook_url"`
	Settings     map[string]any `json:"settings"`
	IsActive     *bool          `json:"is_active"`
}

type UpdateIntegrationRequest struct {
	Config     map[string]any `json:"config"`
	WebhookURL *string        `json:"webhook_url"`
	Settings   map[string]any `json:"settings"`
	IsActive   *bool          `json:"is_active"`
}

type CodemagicSetupRequest struct {
	RepositoryID string `json:"repository_id"`
	AppID        string `json:"app_id"`
	WorkflowID   string `json:"workflow_id"`
	Token        string `json:"token"`
}

type GitHubActionsSetupRequest struct {
	RepositoryID string `json:"repository_id"`
	Workflow     string `json:"workflow"`
	Ref          string `json:"ref"`
}

type IntegrationDetails struct {
	Integration
	RecentBuilds []Build `json:"recent_builds,omitempty"`
}

type IntegrationTest struct {
	IntegrationID string    `json:"integration_id"`
	Success       bool      `json:"success"`
	Message       string    `json:"message"`
	TestedAt      time.Time `json:"tested_at"`
}

type Platform struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SetupGuide string `json:"setup_guide,omitempty"`
	Automated  bool   `json:"automated"`
}

type Platforms struct {
	Platforms []Platform `json:"platforms"`
}

func integrationID(r *http.Request) (domain.IntegrationID, error) {
	id, err := uuidParam(r, "id")

	return domain.IntegrationID(id), err
}

// bodyRepositoryID parses a repository id carried in a request body.
func bodyRepositoryID(v string) (domain.RepositoryID, error) {
	if v == "" {
		return domain.RepositoryID{}, serrors.With(serrors.ErrBadRequest, "repository_id is required")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return domain.RepositoryID{}, serrors.With(serrors.ErrBadRequest, "invalid repository_id")
	}

	return domain.RepositoryID(id), nil
}

func (h *Handler) ListIntegrations(r *http.Request) (*Response, error) {
	repoID, err := optionalUUID(r, "repository_id")
	if err != nil {
		return nil, err
	}
	active, err := boolQuery(r, "is_active")
	if err != nil {
		return nil, err
	}

	integrations, err := h.deps.Catalog.ListIntegrations(r.Context(), catalog.IntegrationQuery{
		RepositoryID: domain.RepositoryID(repoID),
		Platform:     domain.Platform(r.URL.Query().Get("platform")),
		IsActive:     active,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Integration, 0, len(integrations))
	for i := range integrations {
		items = append(items, DomainIntegrationToV1(&integrations[i], false))
	}
	return ok(List[Integration]{Items: items, Total: int64(len(items)), Limit: uint(len(items))}), nil
}

func (h *Handler) CreateIntegration(r *http.Request) (*Response, error) {
	var req CreateIntegrationRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	repoID, err := bodyRepositoryID(req.RepositoryID)
	if err != nil {
		return nil, err
	}

	integration, err := h.deps.Catalog.CreateIntegration(r.Context(), catalog.NewIntegration{
		RepositoryID: repoID,
		Platform:     domain.Platform(req.Platform),
		Config:       req.Config,
		WebhookURL:   req.WebhookURL,
		Settings:     req.Settings,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return created(DomainIntegrationToV1(integration, true)), nil
}

func (h *Handler) GetIntegration(r *http.Request) (*Response, error) {
	id, err := integrationID(r)
	if err != nil {
		return nil, err
	}
	withConfig, err := boolQuery(r, "include_config")
	if err != nil {
		return nil, err
	}
	withBuilds, err := boolQuery(r, "include_recent_builds")
	if err != nil {
		return nil, err
	}

	details, err := h.deps.Catalog.GetIntegration(r.Context(), id, withBuilds != nil && *withBuilds)
	if err != nil {
		return nil, err
	}

	return ok(IntegrationDetails{
		Integration:  DomainIntegrationToV1(&details.Integration, withConfig == nil || *withConfig),
		RecentBuilds: DomainBuildsToV1(details.RecentBuilds),
	}), nil
}

func (h *Handler) UpdateIntegration(r *http.Request) (*Response, error) {
	id, err := integrationID(r)
	if err != nil {
		return nil, err
	}
	var req UpdateIntegrationRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	integration, err := h.deps.Catalog.UpdateIntegration(r.Context(), id, catalog.IntegrationChanges{
		Config:     req.Config,
		WebhookURL: req.WebhookURL,
		Settings:   req.Settings,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return ok(DomainIntegrationToV1(integration, true)), nil
}

func (h *Handler) DeleteIntegration(r *http.Request) (*Response, error) {
	id, err := integrationID(r)
	if err != nil {
		return nil, err
	}

	if err := h.deps.Catalog.DeleteIntegration(r.Context(), id); err != nil {
		return nil, err
	}

	return noContent(), nil
}

func (h *Handler) TestIntegration(r *http.Request) (*Response, error) {
	id, err := integrationID(r)
	if err != nil {
		return nil, err
	}

	res, err := h.deps.Catalog.TestIntegration(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return ok(IntegrationTest{
		IntegrationID: id.String(),
		Success:       res.Success,
		Message:       res.Message,
		TestedAt:      res.TestedAt,
	}), nil
}

func (h *Handler) SupportedPlatforms(*http.Request) (*Response, error) {
	platforms := h.deps.Catalog.SupportedPlatforms()
	out := Platforms{Platforms: make([]Platform, 0, len(platforms))}
	for _, p := range platforms {
		out.Platforms = append(out.Platforms, Platform{
			ID:         string(p.ID),
			Name:       p.Name,
			SetupGuide: p.SetupGuide,
			Automated:  p.Automated,
		})
	}

	return ok(out), nil
}

func (h *Handler) SetupCodemagic(r *http.Request) (*Response, error) {
	var req CodemagicSetupRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	repoID, err := bodyRepositoryID(req.RepositoryID)
	if err != nil {
		return nil, err
	}

	integration, err := h.deps.Catalog.ConfigureCodemagic(r.Context(), catalog.CodemagicSetup{
		RepositoryID: repoID,
		AppID:        req.AppID,
		WorkflowID:   req.WorkflowID,
		Token:        req.Token,
	})
	if err != nil {
		return nil, err
	}

	return ok(DomainIntegrationToV1(integration, true)), nil
}

func (h *Handler) SetupGitHubActions(r *http.Request) (*Response, error) {
	var req GitHubActionsSetupRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	repoID, err := bodyRepositoryID(req.RepositoryID)
	if err != nil {
		return nil, err
	}

	integration, err := h.deps.Catalog.ConfigureGitHubActions(r.Context(), catalog.GitHubActionsSetup{
		RepositoryID: repoID,
		Workflow:     req.Workflow,
		Ref:          req.Ref,
	})
	if err != nil {
		return nil, err
	}

	return ok(DomainIntegrationToV1(integration, true)), nil
}
