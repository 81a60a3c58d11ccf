package webshell

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Page is a top-level screen of the web client.
type Page string

const (
	PageDashboard    Page = "Dashboard"
	PageRepositories Page = "Repositories"
	PageBuilds       Page = "Builds"
	PageSettings     Page = "Settings"
)

// Route binds a path to a page.
type Route struct {
	Path  string `json:"path"`
	Page  Page   `json:"page"`
	Title string `json:"title"`
}

// Routes returns the route table in navigation order.
func Routes() []Route {
	return []Route{
		{Path: "/", Page: PageDashboard, Title: "Dashboard"},
		{Path: "/repositories", Page: PageRepositories, Title: "Repositories"},
		{Path: "/builds", Page: PageBuilds, Title: "Builds"},
		{Path: "/settings", Page: PageSettings, Title: "Settings"},
	}
}

// Resolve finds the route for p. A trailing slash is ignored.
func Resolve(p string) (Route, bool) {
	p = cleanPath(p)
	for _, r := range Routes() {
		if r.Path == p {
			return r, true
		}
	}

	return Route{}, false
}

func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	c := path.Clean(p)
	if c == "." {
		return "/"
	}

	return c
}

// ValidateRoutes checks that paths are absolute and unique and that every
// page appears exactly once.
func ValidateRoutes(routes []Route) error {
	var errs []error
	paths := make(map[string]bool, len(routes))
	pages := make(map[Page]int, len(routes))

	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") {
			errs = append(errs, fmt.Errorf("route %q is not absolute", r.Path))
		}
		if paths[r.Path] {
			errs = append(errs, fmt.Errorf("route %q is duplicated", r.Path))
		}
		paths[r.Path] = true
		pages[r.Page]++
	}

	for _, p := range []Page{PageDashboard, PageRepositories, PageBuilds, PageSettings} {
		if n := pages[p]; n != 1 {
			errs = append(errs, fmt.Errorf("page %s appears %d times", p, n))
		}
	}

	return errors.Join(errs...)
}
