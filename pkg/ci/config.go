package ci

import "strings"

// ConfigString reads a string value from an integration config.
func ConfigString(cfg map[string]any, key, def string) string {
	if v, ok := cfg[key].(string); ok && v != "" {
		return v
	}

	return def
}

// SplitRepository splits owner/name. ok is false for malformed values.
func SplitRepository(fullName string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}

	return owner, name, true
}
