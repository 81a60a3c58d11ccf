package v1handler

import (
	"net/http"

	"autobuilder/internal/catalog"
	"autobuilder/pkg/domain"
)

type CreateRepositoryRequest struct {
	Owner            string `json:"owner"`
	Name             string `json:"name"`
	GitHubRepoID     int64  `json:"github_repo_id"`
	Description      string `json:"description"`
	DefaultLanguage  string `json:"default_language"`
	IsPrivate        bool   `json:"is_private"`
	AutoFixEnabled   *bool  `json:"auto_fix_enabled"`
	AutoFixSafeOnly  *bool  `json:"auto_fix_safe_only"`
	AutoMergeEnabled *bool  `json:"auto_merge_enabled"`
	PrimaryBranch    string `json:"primary_branch"`
}

type UpdateRepositoryRequest struct {
	Description      *string `json:"description"`
	AutoFixEnabled   *bool   `json:"auto_fix_enabled"`
	AutoFixSafeOnly  *bool   `json:"auto_fix_safe_only"`
	AutoMergeEnabled *bool   `json:"auto_merge_enabled"`
	PrimaryBranch    *string `json:"primary_branch"`
}

type RepositoryDetails struct {
	Repository
	Integrations []Integration `json:"integrations,omitempty"`
	RecentBuilds []Build       `json:"recent_builds,omitempty"`
}

type LinkResponse struct {
	Status       string `json:"status"`
	RepositoryID string `json:"repository_id"`
	Message      string `json:"message"`
}

func repositoryID(r *http.Request) (domain.RepositoryID, error) {
	id, err := uuidParam(r, "id")

	return domain.RepositoryID(id), err
}

func (h *Handler) ListRepositories(r *http.Request) (*Response, error) {
	autoFix, err := boolQuery(r, "auto_fix_enabled")
	if err != nil {
		return nil, err
	}
	limit, err := uintQuery(r, "limit")
	if err != nil {
		return nil, err
	}
	offset, err := uintQuery(r, "offset")
	if err != nil {
		return nil, err
	}

	page, err := h.deps.Catalog.ListRepositories(r.Context(), catalog.RepositoryQuery{
		AutoFixEnabled: autoFix,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}

	items := make([]Repository, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, DomainRepositoryToV1(&page.Items[i]))
	}
	if limit == 0 {
		limit = catalog.DefaultLimit
	}
	return ok(List[Repository]{
		Items:   items,
		Total:   page.Total,
		Limit:   limit,
		Offset:  offset,
		HasMore: page.HasMore,
	}), nil
}

func (h *Handler) CreateRepository(r *http.Request) (*Response, error) {
	var req CreateRepositoryRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	repo, err := h.deps.Catalog.CreateRepository(r.Context(), catalog.NewRepository{
		Owner:            req.Owner,
		Name:             req.Name,
		GitHubRepoID:     req.GitHubRepoID,
		Description:      req.Description,
		DefaultLanguage:  req.DefaultLanguage,
		IsPrivate:        req.IsPrivate,
		AutoFixEnabled:   req.AutoFixEnabled,
		AutoFixSafeOnly:  req.AutoFixSafeOnly,
		AutoMergeEnabled: req.AutoMergeEnabled,
		PrimaryBranch:    req.PrimaryBranch,
	})
	if err != nil {
		return nil, err
	}

	return created(DomainRepositoryToV1(repo)), nil
}

func (h *Handler) GetRepository(r *http.Request) (*Response, error) {
	id, err := repositoryID(r)
	if err != nil {
		return nil, err
	}
	withIntegrations, err := boolQuery(r, "include_integrations")
	if err != nil {
		return nil, err
	}
	withBuilds, err := boolQuery(r, "include_recent_builds")
	if err != nil {
		return nil, err
	}

	details, err := h.deps.Catalog.GetRepository(r.Context(), id,
		withIntegrations == nil || *withIntegrations,
		withBuilds != nil && *withBuilds)
	if err != nil {
		return nil, err
	}

	out := RepositoryDetails{
		Repository:   DomainRepositoryToV1(&details.Repository),
		RecentBuilds: DomainBuildsToV1(details.RecentBuilds),
	}
	for i := range details.Integrations {
		out.Integrations = append(out.Integrations, DomainIntegrationToV1(&details.Integrations[i], false))
	}

	return ok(out), nil
}

func (h *Handler) UpdateRepository(r *http.Request) (*Response, error) {
	id, err := repositoryID(r)
	if err != nil {
		return nil, err
	}
	var req UpdateRepositoryRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	repo, err := h.deps.Catalog.UpdateRepository(r.Context(), id, catalog.RepositoryChanges{
		Description:      req.Description,
		AutoFixEnabled:   req.AutoFixEnabled,
		AutoFixSafeOnly:  req.AutoFixSafeOnly,
		AutoMergeEnabled: req.AutoMergeEnabled,
		PrimaryBranch:    req.PrimaryBranch,
	})
	if err != nil {
		return nil, err
	}

	return ok(DomainRepositoryToV1(repo)), nil
}

func (h *Handler) DeleteRepository(r *http.Request) (*Response, error) {
	id, err := repositoryID(r)
	if err != nil {
		return nil, err
	}

	if err := h.deps.Catalog.DeleteRepository(r.Context(), id); err != nil {
		return nil, err
	}

	return noContent(), nil
}

func (h *Handler) LinkRepository(r *http.Request) (*Response, error) {
	id, err := repositoryID(r)
	if err != nil {
		return nil, err
	}

	if err := h.deps.Catalog.LinkRepository(r.Context(), id); err != nil {
		return nil, err
	}

	return &Response{Status: http.StatusAccepted, Body: LinkResponse{
		Status:       "linking",
		RepositoryID: id.String(),
		Message:      "repository sync with GitHub has been scheduled",
	}}, nil
}

func (h *Handler) RepositorySettings(r *http.Request) (*Response, error) {
	id, err := repositoryID(r)
	if err != nil {
		return nil, err
	}

	settings, err := h.deps.Catalog.RepositorySettings(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return ok(RepositorySettingsToV1(settings)), nil
}
