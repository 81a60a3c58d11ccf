package webshell

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// RenderWorkbox writes cfg as a workbox-build configuration module. Patterns
// become regular expression literals.
func RenderWorkbox(w io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid cache config: %w", err)
	}

	bw := bufio.NewWriter(w)
	p := cfg.Precache
	fmt.Fprintln(bw, "module.exports = {")
	fmt.Fprintf(bw, "  globDirectory: %s,\n", jsString(p.GlobDirectory))
	fmt.Fprintln(bw, "  globPatterns: [")
	for i, g := range p.GlobPatterns {
		fmt.Fprintf(bw, "    %s%s\n", jsString(g), comma(i, len(p.GlobPatterns)))
	}
	fmt.Fprintln(bw, "  ],")
	fmt.Fprintf(bw, "  swDest: %s,\n", jsString(p.SWDest))
	if p.NavigateFallback != "" {
		fmt.Fprintf(bw, "  navigateFallback: %s,\n", jsString(p.NavigateFallback))
	}
	fmt.Fprintf(bw, "  skipWaiting: %t,\n", p.SkipWaiting)
	fmt.Fprintf(bw, "  clientsClaim: %t,\n", p.ClientsClaim)
	fmt.Fprintf(bw, "  navigationPreload: %t,\n", p.NavigationPreload)
	fmt.Fprintf(bw, "  cleanupOutdatedCaches: %t,\n", p.CleanupOutdatedCaches)
	fmt.Fprintf(bw, "  maximumFileSizeToCacheInBytes: %d,\n", p.MaximumFileSizeToCacheInBytes)
	if p.DontCacheBustURLsMatching != "" {
		fmt.Fprintf(bw, "  dontCacheBustURLsMatching: %s,\n", jsRegex(p.DontCacheBustURLsMatching))
	}
	fmt.Fprintln(bw, "  runtimeCaching: [")
	for i, r := range cfg.Rules {
		statuses := make([]string, len(r.CacheableStatuses))
		for j, s := range r.CacheableStatuses {
			statuses[j] = strconv.Itoa(s)
		}

		fmt.Fprintln(bw, "    {")
		fmt.Fprintf(bw, "      urlPattern: %s,\n", jsRegex(r.URLPattern))
		fmt.Fprintf(bw, "      handler: %s,\n", jsString(string(r.Handler)))
		fmt.Fprintln(bw, "      options: {")
		fmt.Fprintf(bw, "        cacheName: %s,\n", jsString(r.CacheName))
		fmt.Fprintln(bw, "        expiration: {")
		fmt.Fprintf(bw, "          maxEntries: %d,\n", r.Expiration.MaxEntries)
		fmt.Fprintf(bw, "          maxAgeSeconds: %d\n", r.Expiration.MaxAgeSeconds)
		fmt.Fprintln(bw, "        },")
		fmt.Fprintln(bw, "        cacheableResponse: {")
		fmt.Fprintf(bw, "          statuses: [%s]\n", strings.Join(statuses, ", "))
		fmt.Fprintln(bw, "        }")
		fmt.Fprintln(bw, "      }")
		fmt.Fprintf(bw, "    }%s\n", comma(i, len(cfg.Rules)))
	}
	fmt.Fprintln(bw, "  ]")
	fmt.Fprintln(bw, "};")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write workbox config: %w", err)
	}

	return nil
}

func comma(i, n int) string {
	if i < n-1 {
		return ","
	}

	return ""
}

func jsString(s string) string {
	b, _ := json.Marshal(s)

	return string(b)
}

// jsRegex turns a pattern into a /.../ literal, escaping bare slashes.
func jsRegex(pattern string) string {
	var sb strings.Builder
	sb.WriteByte('/')
	for i := 0; i < len(pattern); i++ {
		ch := pattern[i]
		switch {
		case ch == '\\' && i+1 < len(pattern):
			sb.WriteByte(ch)
			i++
			sb.WriteByte(pattern[i])
		case ch == '/':
			sb.WriteString(`\/`)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte('/')

	return sb.String()
}
