package v1handler

import (
	"net/http"

	"autobuilder/pkg/serrors"
	"autobuilder/pkg/webshell"
)

type Shell struct {
	Routes []webshell.Route      `json:"routes"`
	Toast  webshell.ToastOptions `json:"toast"`
}

type CacheRuleMatch struct {
	URL  string             `json:"url"`
	Rule webshell.CacheRule `json:"rule"`
}

func (h *Handler) Shell(*http.Request) (*Response, error) {
	return ok(Shell{Routes: webshell.Routes(), Toast: webshell.DefaultToast()}), nil
}

func (h *Handler) CacheRules(*http.Request) (*Response, error) {
	return ok(h.deps.Cache), nil
}

func (h *Handler) MatchCacheRule(r *http.Request) (*Response, error) {
	url := r.URL.Query().Get("url")
	if url == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "url is required")
	}

	rule, found := h.matcher.Match(url)
	if !found {
		return nil, serrors.With(serrors.ErrNotFound, "no cache rule matches %q", url)
	}

	return ok(CacheRuleMatch{URL: url, Rule: rule}), nil
}
