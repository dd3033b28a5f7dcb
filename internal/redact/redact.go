// Package redact scrubs credentials and other sensitive fragments from
// strings before they are logged. LLM client errors routinely echo request
// URLs, headers and file paths, so every error that reaches a log line on
// the API path goes through Error first.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedTokenPlaceholder = "[REDACTED_TOKEN]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedHostPlaceholder  = "[REDACTED_HOST]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Order matters: specific key formats run before the generic rules so the
// placeholder names the kind of secret that was found.
var rules = []rule{
	// OpenAI secret keys (sk-..., sk-proj-...).
	{regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}`), RedactedKeyPlaceholder},
	// Google API keys as used by the Gemini API.
	{regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{30,}`), RedactedKeyPlaceholder},
	// Authorization headers.
	{regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/=-]{8,}`), "Bearer " + RedactedTokenPlaceholder},
	// key=..., api_key: "...", x-goog-api-key=... and similar.
	{
		regexp.MustCompile(`(?i)\b((?:x-goog-)?api[_-]?key|key|token|secret)(["']?\s*[:=]\s*["']?)[A-Za-z0-9._~+/-]{8,}`),
		"${1}${2}" + RedactedKeyPlaceholder,
	},
	// URLs with embedded credentials.
	{regexp.MustCompile(`(?i)\b([a-z][a-z0-9+.-]*://)[^/\s:@]+:[^/\s@]+@`), "${1}" + RedactedTokenPlaceholder + "@"},
	// Absolute unix and windows paths, e.g. prompt template locations.
	{regexp.MustCompile(`(?:^|\s|["'(])((?:/[\w.-]+){2,})`), " " + RedactedPathPlaceholder},
	{regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(?:\\[^\\\s]+)+`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
