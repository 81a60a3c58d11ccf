package webshell

import (
	"errors"
	"fmt"
	"regexp"
)

// Strategy is a service worker caching strategy.
type Strategy string

const (
	NetworkFirst         Strategy = "NetworkFirst"
	CacheFirst           Strategy = "CacheFirst"
	StaleWhileRevalidate Strategy = "StaleWhileRevalidate"
	NetworkOnly          Strategy = "NetworkOnly"
	CacheOnly            Strategy = "CacheOnly"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case NetworkFirst, CacheFirst, StaleWhileRevalidate, NetworkOnly, CacheOnly:
		return true
	default:
		return false
	}
}

// Expiration bounds a runtime cache.
type Expiration struct {
	MaxEntries    int `json:"maxEntries"`
	MaxAgeSeconds int `json:"maxAgeSeconds"`
}

// CacheRule tells the service worker how to cache responses whose URL matches
// URLPattern.
type CacheRule struct {
	URLPattern        string     `json:"urlPattern"`
	Handler           Strategy   `json:"handler"`
	CacheName         string     `json:"cacheName"`
	Expiration        Expiration `json:"expiration"`
	CacheableStatuses []int      `json:"cacheableStatuses"`
}

// PrecacheConfig drives which build outputs are cached at install time.
type PrecacheConfig struct {
	GlobDirectory                 string   `json:"globDirectory"`
	GlobPatterns                  []string `json:"globPatterns"`
	SWDest                        string   `json:"swDest"`
	NavigateFallback              string   `json:"navigateFallback"`
	SkipWaiting                   bool     `json:"skipWaiting"`
	ClientsClaim                  bool     `json:"clientsClaim"`
	NavigationPreload             bool     `json:"navigationPreload"`
	CleanupOutdatedCaches         bool     `json:"cleanupOutdatedCaches"`
	MaximumFileSizeToCacheInBytes int64    `json:"maximumFileSizeToCacheInBytes"`
	DontCacheBustURLsMatching     string   `json:"dontCacheBustURLsMatching"`
}

// Config is the full service worker configuration. Rule order matters: the
// first matching rule wins.
type Config struct {
	Precache PrecacheConfig `json:"precache"`
	Rules    []CacheRule    `json:"rules"`
}

// DefaultConfig returns the caching configuration of the web client.
func DefaultConfig() Config {
	return Config{
		Precache: PrecacheConfig{
			GlobDirectory: "build/",
			GlobPatterns: []string{
				"**/*.{js,css,html,png,jpg,jpeg,gif,svg,woff,woff2,ttf,eot}",
				"manifest.json",
				"offline.html",
				"icons/**/*",
				"sw.js",
			},
			// workbox generateSW refuses a config without a destination
			SWDest:                        "build/sw.js",
			NavigateFallback:              "offline.html",
			SkipWaiting:                   true,
			ClientsClaim:                  true,
			NavigationPreload:             true,
			CleanupOutdatedCaches:         true,
			MaximumFileSizeToCacheInBytes: 3 * 1024 * 1024,
			DontCacheBustURLsMatching:     `\.\w{8}\.`,
		},
		Rules: []CacheRule{
			{
				URLPattern:        `^https://api\.github\.com/`,
				Handler:           NetworkFirst,
				CacheName:         "github-api-cache",
				Expiration:        Expiration{MaxEntries: 50, MaxAgeSeconds: 5 * 60},
				CacheableStatuses: []int{0, 200},
			},
			{
				URLPattern:        `/api/`,
				Handler:           NetworkFirst,
				CacheName:         "api-cache",
				Expiration:        Expiration{MaxEntries: 100, MaxAgeSeconds: 2 * 60},
				CacheableStatuses: []int{0, 200, 201, 204},
			},
			{
				URLPattern:        `\.(?:png|jpg|jpeg|svg|gif|webp|ico)$`,
				Handler:           CacheFirst,
				CacheName:         "images-cache",
				Expiration:        Expiration{MaxEntries: 60, MaxAgeSeconds: 30 * 24 * 60 * 60},
				CacheableStatuses: []int{0, 200},
			},
			{
				URLPattern:        `\.(?:woff|woff2|ttf|eot)$`,
				Handler:           CacheFirst,
				CacheName:         "fonts-cache",
				Expiration:        Expiration{MaxEntries: 20, MaxAgeSeconds: 365 * 24 * 60 * 60},
				CacheableStatuses: []int{0, 200},
			},
			{
				URLPattern:        `\.(?:js|css)$`,
				Handler:           StaleWhileRevalidate,
				CacheName:         "static-resources",
				Expiration:        Expiration{MaxEntries: 50, MaxAgeSeconds: 7 * 24 * 60 * 60},
				CacheableStatuses: []int{0, 200},
			},
		},
	}
}

// Validate reports every problem in the configuration at once.
func (c Config) Validate() error {
	var errs []error

	if c.Precache.MaximumFileSizeToCacheInBytes <= 0 {
		errs = append(errs, errors.New("precache: maximum file size must be positive"))
	}
	if p := c.Precache.DontCacheBustURLsMatching; p != "" {
		if _, err := regexp.Compile(p); err != nil {
			errs = append(errs, fmt.Errorf("precache: invalid cache-bust pattern: %w", err))
		}
	}

	names := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		prefix := fmt.Sprintf("rule %d (%s)", i, r.CacheName)
		if _, err := regexp.Compile(r.URLPattern); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid pattern: %w", prefix, err))
		}
		if !r.Handler.Valid() {
			errs = append(errs, fmt.Errorf("%s: unknown strategy %q", prefix, r.Handler))
		}
		switch {
		case r.CacheName == "":
			errs = append(errs, fmt.Errorf("%s: cache name is empty", prefix))
		case names[r.CacheName]:
			errs = append(errs, fmt.Errorf("%s: cache name is duplicated", prefix))
		}
		names[r.CacheName] = true
		if r.Expiration.MaxEntries < 0 {
			errs = append(errs, fmt.Errorf("%s: max entries is negative", prefix))
		}
		if r.Expiration.MaxAgeSeconds < 0 {
			errs = append(errs, fmt.Errorf("%s: max age is negative", prefix))
		}
		if len(r.CacheableStatuses) == 0 {
			errs = append(errs, fmt.Errorf("%s: no cacheable statuses", prefix))
		}
		for _, s := range r.CacheableStatuses {
			if s != 0 && (s < 100 || s > 599) {
				errs = append(errs, fmt.Errorf("%s: invalid status %d", prefix, s))
			}
		}
	}

	return errors.Join(errs...)
}

// Match returns the first rule whose pattern matches url. Rules with invalid
// patterns never match. It compiles the patterns on every call; use a Matcher
// for repeated lookups.
func (c Config) Match(url string) (CacheRule, bool) {
	return compile(c.Rules).Match(url)
}

// Matcher is a Config with its patterns compiled once.
type Matcher struct {
	rules []CacheRule
	// patterns holds nil for a rule whose pattern does not compile.
	patterns []*regexp.Regexp
}

// NewMatcher validates cfg and compiles its patterns.
func NewMatcher(cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cache config: %w", err)
	}

	return compile(cfg.Rules), nil
}

func compile(rules []CacheRule) *Matcher {
	m := &Matcher{rules: rules, patterns: make([]*regexp.Regexp, len(rules))}
	for i, r := range rules {
		if re, err := regexp.Compile(r.URLPattern); err == nil {
			m.patterns[i] = re
		}
	}

	return m
}

// Match returns the first rule whose pattern matches url.
func (m *Matcher) Match(url string) (CacheRule, bool) {
	for i, re := range m.patterns {
		if re != nil && re.MatchString(url) {
			return m.rules[i], true
		}
	}

	return CacheRule{}, false
}
