package v1handler

import (
	"net/http"
	"strconv"

	"autobuilder/internal/builds"
	"autobuilder/pkg/domain"
	"autobuilder/pkg/serrors"
)

type LogsUpdateRequest struct {
	Status    *string `json:"status"`
	Logs      *string `json:"logs"`
	ErrorLogs *string `json:"error_logs"`
	LogsURL   *string `json:"logs_url"`
}

type Suggestions struct {
	BuildID     string   `json:"build_id"`
	Suggestions []string `json:"suggestions"`
}

func buildID(r *http.Request) (domain.BuildID, error) {
	id, err := uuidParam(r, "id")

	return domain.BuildID(id), err
}

func (h *Handler) ListBuilds(r *http.Request) (*Response, error) {
	repoID, err := optionalUUID(r, "repository_id")
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

	page, err := h.deps.Builds.List(r.Context(), builds.Query{
		RepositoryID: domain.RepositoryID(repoID),
		Status:       domain.BuildStatus(r.URL.Query().Get("status")),
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	if limit == 0 {
		limit = builds.DefaultLimit
	}

	return ok(List[Build]{
		Items:   DomainBuildsToV1(page.Items),
		Total:   page.Total,
		Limit:   limit,
		Offset:  offset,
		HasMore: page.HasMore,
	}), nil
}

func (h *Handler) GetBuild(r *http.Request) (*Response, error) {
	id, err := buildID(r)
	if err != nil {
		return nil, err
	}

	details, err := h.deps.Builds.Get(r.Context(), id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(BuildDetailsToV1(details)), nil
}

func (h *Handler) UpdateBuildLogs(r *http.Request) (*Response, error) {
	id, err := buildID(r)
	if err != nil {
		return nil, err
	}
	var req LogsUpdateRequest
	if err := decode(r, &req); err != nil {
		return nil, err
	}

	update := builds.LogsUpdate{Logs: req.Logs, ErrorLogs: req.ErrorLogs, LogsURL: req.LogsURL}
	if req.Status != nil {
		status := domain.BuildStatus(*req.Status)
		update.Status = &status
	}

	b, err := h.deps.Builds.UpdateLogs(r.Context(), id, update)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(DomainBuildToV1(b)), nil
}

func (h *Handler) RetryBuild(r *http.Request) (*Response, error) {
	id, err := buildID(r)
	if err != nil {
		return nil, err
	}

	b, err := h.deps.Builds.Retry(r.Context(), id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return created(DomainBuildToV1(b)), nil
}

func (h *Handler) BuildStatistics(r *http.Request) (*Response, error) {
	repoID, err := optionalUUID(r, "repository_id")
	if err != nil {
		return nil, err
	}
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		if days, err = strconv.Atoi(v); err != nil {
			return nil, serrors.With(serrors.ErrBadRequest, "days must be an integer")
		}
	}

	stats, err := h.deps.Builds.Statistics(r.Context(), domain.RepositoryID(repoID), days)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(StatisticsToV1(stats)), nil
}

func (h *Handler) FixSuggestions(r *http.Request) (*Response, error) {
	id, err := buildID(r)
	if err != nil {
		return nil, err
	}

	suggestions, err := h.deps.AutoFix.Suggestions(r.Context(), id)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(Suggestions{BuildID: id.String(), Suggestions: suggestions}), nil
}

// ApproveFixAttempt applies an attempt that waits for approval.
func (h *Handler) ApproveFixAttempt(r *http.Request) (*Response, error) {
	id, err := buildID(r)
	if err != nil {
		return nil, err
	}
	attemptID, err := uuidParam(r, "attemptID")
	if err != nil {
		return nil, err
	}

	attempt, err := h.deps.AutoFix.Approve(r.Context(), id, domain.FixAttemptID(attemptID))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return ok(DomainFixAttemptToV1(attempt)), nil
}
