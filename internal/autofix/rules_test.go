package autofix_test

import (
	"testing"

	"autobuilder/internal/autofix"
	"autobuilder/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeLogs(t *testing.T) {
	logs := "step 1\n" +
		"Traceback (most recent call last):\n" +
		"ModuleNotFoundError: No module named 'requests'\n" +
		"error: java_home is NOT SET in this shell\n" +
		"syntaxerror: unexpected token"

	matches := autofix.AnalyzeLogs(logs)
	require.Len(t, matches, 3)

	require.Equal(t, "missing_python_package", matches[0].Rule)
	require.Equal(t, "requests", matches[0].MatchedText)
	require.Equal(t, "ModuleNotFoundError: No module named 'requests'", matches[0].ErrorMessage)
	require.Equal(t, 3, matches[0].LineNumber)
	require.Equal(t, domain.FixTypeDependencyUpdate, matches[0].FixType)
	require.Equal(t, 90, matches[0].Confidence)

	require.Equal(t, "java_home_not_set", matches[1].Rule)
	require.Equal(t, 4, matches[1].LineNumber)
	require.Empty(t, matches[1].MatchedText)

	require.Equal(t, "syntax_error", matches[2].Rule)
	require.Equal(t, "syntaxerror: unexpected token", matches[2].ErrorMessage)
	require.Equal(t, 70, matches[2].Confidence)
}

func TestAnalyzeLogs_EveryRule(t *testing.T) {
	tests := map[string]string{
		"missing_python_package":      "ModuleNotFoundError: No module named 'x'",
		"dependency_version_conflict": "ERROR: pip found a version conflict",
		"gradle_sync_failed":          "Gradle sync failed: boom",
		"android_sdk_missing":         "Android SDK location not found",
		"java_home_not_set":           "JAVA_HOME is not set",
		"keystore_not_found":          "release keystore file not found",
		"npm_package_missing":         "npm ERR! 404 'left-pad' not found",
		"syntax_error":                "SyntaxError: invalid syntax",
	}

	for rule, logs := range tests {
		matches := autofix.AnalyzeLogs(logs)
		require.NotEmpty(t, matches, rule)
		require.Equal(t, rule, matches[0].Rule)
		require.NotEqual(t, autofix.ManualReview, autofix.Suggest(matches[0]), rule)
	}

	require.Empty(t, autofix.AnalyzeLogs(""))
	require.Empty(t, autofix.AnalyzeLogs("all good"))
}

func TestSuggest(t *testing.T) {
	require.Equal(t, "Add the missing package: requests",
		autofix.Suggest(domain.ErrorMatch{Rule: "missing_python_package", MatchedText: "requests"}))
	require.Equal(t, "Install the package: npm install",
		autofix.Suggest(domain.ErrorMatch{Rule: "npm_package_missing"}))
	require.Equal(t, autofix.ManualReview, autofix.Suggest(domain.ErrorMatch{Rule: "unknown"}))
}
