package autofix

import (
	"fmt"
	"regexp"
	"strings"

	"autobuilder/pkg/domain"
)

// Rule recognizes one kind of build failure in logs.
type Rule struct {
	Name        string
	Description string
	FixType     domain.FixType
	Confidence  int
	pattern     *regexp.Regexp
	suggest     func(m domain.ErrorMatch) string
}

func newRule(name, pattern string, fixType domain.FixType, confidence int, description string,
	suggest func(m domain.ErrorMatch) string) Rule {
	return Rule{
		Name:        name,
		Description: description,
		FixType:     fixType,
		Confidence:  confidence,
		pattern:     regexp.MustCompile("(?i)" + pattern),
		suggest:     suggest,
	}
}

func fixed(s string) func(domain.ErrorMatch) string {
	return func(domain.ErrorMatch) string { return s }
}

// Rules are evaluated in order.
var Rules = []Rule{ //nolint: gochecknoglobals
	newRule("missing_python_package", `ModuleNotFoundError: No module named '([^']+)'`,
		domain.FixTypeDependencyUpdate, 90, "Missing Python package",
		func(m domain.ErrorMatch) string { return "Add the missing package: " + m.MatchedText }),
	newRule("dependency_version_conflict", `ERROR:.*version.*conflict`,
		domain.FixTypeDependencyUpdate, 80, "Dependency version conflict",
		fixed("Update dependencies to resolve the conflict")),
	newRule("gradle_sync_failed", `Gradle sync failed`,
		domain.FixTypeConfigFix, 85, "Gradle sync failed",
		fixed("Run gradle clean build")),
	newRule("android_sdk_missing", `Android SDK.*not found`,
		domain.FixTypeEnvironmentFix, 90, "Android SDK not found",
		fixed("Install and configure the Android SDK")),
	newRule("java_home_not_set", `JAVA_HOME.*not set`,
		domain.FixTypeEnvironmentFix, 95, "JAVA_HOME is not set",
		fixed("Set the JAVA_HOME environment variable")),
	newRule("keystore_not_found", `keystore.*not found`,
		domain.FixTypeMissingFile, 85, "Keystore file missing",
		fixed("Create the keystore file or point to its correct path")),
	newRule("npm_package_missing", `npm ERR!.*not found`,
		domain.FixTypeDependencyUpdate, 80, "NPM package missing",
		func(m domain.ErrorMatch) string {
			return strings.TrimSpace("Install the package: npm install " + m.MatchedText)
		}),
	newRule("syntax_error", `SyntaxError.*`,
		domain.FixTypeSyntaxFix, 70, "Syntax error",
		fixed("Review and correct the code syntax")),
}

// ManualReview is suggested for matches without a known remedy.
const ManualReview = "Needs manual review"

// AnalyzeLogs returns every rule match in logs, grouped by rule in rule order.
func AnalyzeLogs(logs string) []domain.ErrorMatch {
	if logs == "" {
		return nil
	}

	var out []domain.ErrorMatch
	for _, r := range Rules {
		for _, loc := range r.pattern.FindAllStringSubmatchIndex(logs, -1) {
			m := domain.ErrorMatch{
				Rule:         r.Name,
				Description:  r.Description,
				FixType:      r.FixType,
				Confidence:   r.Confidence,
				ErrorMessage: logs[loc[0]:loc[1]],
				LineNumber:   strings.Count(logs[:loc[0]], "\n") + 1,
			}
			if len(loc) >= 4 && loc[2] >= 0 {
				m.MatchedText = logs[loc[2]:loc[3]]
			}
			out = append(out, m)
		}
	}

	return out
}

// Suggest renders the remedy proposed for m.
func Suggest(m domain.ErrorMatch) string {
	for _, r := range Rules {
		if r.Name == m.Rule {
			return r.suggest(m)
		}
	}

	return ManualReview
}

// fixNote is the markdown committed with a fix pull request.
func fixNote(build domain.Build, attempt domain.FixAttempt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Auto-fix for build %s\n\n", build.ID)
	fmt.Fprintf(&b, "- Branch: `%s`\n", build.Branch)
	if build.CommitSHA != "" {
		fmt.Fprintf(&b, "- Commit: `%s`\n", build.CommitSHA)
	}
	fmt.Fprintf(&b, "- Rule: `%s` (confidence %d%%)\n", attempt.ErrorPattern, attempt.ConfidenceScore)
	if attempt.Analysis.LineNumber > 0 {
		fmt.Fprintf(&b, "- Log line: %d\n", attempt.Analysis.LineNumber)
	}
	fmt.Fprintf(&b, "\n## Error\n\n```\n%s\n```\n\n## Suggested fix\n\n%s\n", attempt.ErrorMessage, attempt.FixSuggestion)

	return b.String()
}
