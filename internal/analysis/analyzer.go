// Package analysis decomposes a normalized prompt into semantic slots
// (task, role, constraints, output format, tone) using ordered pattern
// tables, and fills the gaps with task-content inference. The detectors
// are heuristic on purpose: they trade recall for zero I/O and full
// determinism.
package analysis

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"promptforge/internal/types"
)

// Analyze scans normalized text for task, role, output-format, constraint,
// and tone signals. When the text contains no recognized task verb the
// zero StructuredPrompt is returned: the input is not task-like and the
// caller should leave it alone.
func Analyze(text string) types.StructuredPrompt {
	var out types.StructuredPrompt

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !taskVerbs.MatchString(trimmed) {
		return out
	}

	out.Task = extractTask(trimmed)

	// The four detectors are independent; each leaves its slot empty on
	// no match.
	out.Role = firstMatch(rolePatterns, trimmed)
	out.OutputFormat = firstMatch(formatPatterns, trimmed)
	out.Constraints = firstMatch(constraintPatterns, trimmed)
	out.Tone = firstMatch(tonePatterns, trimmed)

	return out
}

// IsTaskLike reports whether the text passes the task-verb gate.
func IsTaskLike(text string) bool {
	return taskVerbs.MatchString(text)
}

// extractTask normalizes the task phrasing. Website creation requests get
// a fixed canonical phrasing; everything else is capitalized and given a
// terminal period.
func extractTask(text string) string {
	if websiteTask.MatchString(text) {
		return canonicalWebsiteTask + "."
	}

	task := capitalizeFirst(text)
	if !strings.HasSuffix(task, ".") && !strings.HasSuffix(task, "!") && !strings.HasSuffix(task, "?") {
		task += "."
	}
	return task
}

// firstMatch walks an ordered table and returns the value of the first
// matching pattern. The scan order encodes priority; do not reorder.
func firstMatch(table []detection, text string) string {
	for _, d := range table {
		if d.pattern.MatchString(text) {
			return d.value
		}
	}
	return ""
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	if unicode.IsUpper(first) {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
