package enrich

import (
	"regexp"
	"strings"
)

// minCleanedLength is the safeguard floor: if cleaning shrinks the reply
// below this, the heuristic has eaten the payload and the original
// trimmed reply is returned instead.
const minCleanedLength = 20

// introLabels are known introductory label patterns models prepend to the
// actual payload. Only the FIRST matching pattern is stripped, together
// with everything before it; applying more than one risks eating real
// content that merely resembles a label.
var introLabels = []*regexp.Regexp{
	regexp.MustCompile(`(?i)here'?s (the|your|an?) (enhanced|improved|refined|rewritten) (prompt|version)( for you)?\s*:\n?`),
	regexp.MustCompile(`(?i)here is (the|your|an?) (enhanced|improved|refined|rewritten) (prompt|version)\s*:\n?`),
	regexp.MustCompile(`(?i)\benhanced prompt\s*:\n?`),
	regexp.MustCompile(`(?i)\bimproved prompt\s*:\n?`),
	regexp.MustCompile(`(?i)^okay,? i'?ve analy[sz]ed[^.:\n]*[.:]\s*`),
}

// conversationalOpener matches one short leading explanatory sentence
// ("Sure, happy to help! ..."). At most one such sentence is stripped.
var conversationalOpener = regexp.MustCompile(`(?i)^(sure|okay|ok|certainly|of course|great|alright|absolutely|happy to help)[^.!\n]{0,80}[.!]\s*`)

// Clean strips model commentary from a raw reply. Steps run in a fixed
// order: intro label, conversational opener, wrapping quotes, trim. The
// length floor makes the whole operation safe against over-eager
// patterns.
func Clean(raw string) string {
	original := strings.TrimSpace(raw)
	cleaned := original

	for _, label := range introLabels {
		if loc := label.FindStringIndex(cleaned); loc != nil {
			cleaned = cleaned[loc[1]:]
			break
		}
	}
	cleaned = strings.TrimSpace(cleaned)

	if loc := conversationalOpener.FindStringIndex(cleaned); loc != nil {
		cleaned = strings.TrimSpace(cleaned[loc[1]:])
	}

	cleaned = strings.TrimSpace(unwrapQuotes(cleaned))

	if len(cleaned) < minCleanedLength {
		return original
	}
	return cleaned
}

// unwrapQuotes removes one layer of wrapping quote characters when the
// entire string is quote-delimited.
func unwrapQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	pairs := [][2]string{
		{`"`, `"`},
		{"'", "'"},
		{"“", "”"},
		{"`", "`"},
	}
	for _, pair := range pairs {
		if strings.HasPrefix(s, pair[0]) && strings.HasSuffix(s, pair[1]) {
			return s[len(pair[0]) : len(s)-len(pair[1])]
		}
	}
	return s
}
