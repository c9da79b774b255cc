// Package lexicon implements the local rule-based corrector: dictionary
// typo fixes, regex grammar rewrites, capitalization, and whitespace
// cleanup. Correct is a pure function over its input; there is no I/O and
// no state shared between calls.
package lexicon

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// grammarRule is one ordered regex rewrite. Order matters: later rules
// assume earlier ones already ran (whitespace collapse happens before the
// punctuation and sentence rules).
type grammarRule struct {
	pattern     *regexp.Regexp
	replacement string
}

var grammarRules = []grammarRule{
	// Collapse runs of spaces and tabs. Newlines are left for the
	// whitespace pass.
	{regexp.MustCompile(`[ \t]+`), " "},

	// Article agreement. Letter classes approximate vowel/consonant
	// sounds; "h" is deliberately excluded from the demotion set so
	// "an hour" survives.
	{regexp.MustCompile(`\b([Aa]) ([aeiouAEIOU])`), "${1}n $2"},
	{regexp.MustCompile(`\b([Aa])n ([b-dfgj-np-tv-zB-DFGJ-NP-TV-Z])`), "$1 $2"},

	// Standalone lowercase "i" at start, middle, and end of string.
	{regexp.MustCompile(`^i$`), "I"},
	{regexp.MustCompile(`^i([ '.,?!])`), "I$1"},
	{regexp.MustCompile(`([ ])i([ '.,?!])`), "${1}I$2"},
	{regexp.MustCompile(`([ ])i$`), "${1}I"},

	// No whitespace directly before sentence punctuation.
	{regexp.MustCompile(`\s+([.,?!;:])`), "$1"},
}

var sentenceStart = regexp.MustCompile(`(\. )(\p{Ll})`)

// Correct runs the full correction pipeline: typo pass, grammar pass,
// capitalization pass, whitespace pass. It is total and deterministic;
// correct(correct(x)) == correct(x) for all x.
func Correct(text string) string {
	if strings.TrimSpace(text) == "" {
		return strings.TrimSpace(text)
	}

	out := applyTypos(text)
	out = applyGrammar(out)
	out = applyCapitalization(out)
	out = applyWhitespace(out)
	out = ensureTerminalPunctuation(out)
	return out
}

// applyTypos replaces every whole-word dictionary match, preserving the
// casing pattern of the matched token.
func applyTypos(text string) string {
	for _, rule := range typoRules {
		text = rule.pattern.ReplaceAllStringFunc(text, func(match string) string {
			return matchCasing(match, rule.canonical)
		})
	}
	return text
}

// matchCasing maps the canonical replacement onto the casing of the
// matched token: all-caps matches stay all-caps, leading-capital matches
// keep a leading capital, anything else takes the dictionary casing.
func matchCasing(match, canonical string) string {
	if match == strings.ToUpper(match) && match != strings.ToLower(match) {
		return strings.ToUpper(canonical)
	}
	first, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(first) {
		return capitalizeFirst(canonical)
	}
	return canonical
}

func applyGrammar(text string) string {
	for _, rule := range grammarRules {
		text = rule.pattern.ReplaceAllString(text, rule.replacement)
	}
	return text
}

// applyCapitalization uppercases the first letter of the string and the
// first letter after every ". " sequence.
func applyCapitalization(text string) string {
	text = capitalizeFirst(text)
	return sentenceStart.ReplaceAllStringFunc(text, strings.ToUpper)
}

// applyWhitespace trims the string, trims every line, and collapses runs
// of blank lines.
func applyWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// ensureTerminalPunctuation appends a period when the text ends on a
// letter or digit. Existing punctuation of any kind is left alone.
func ensureTerminalPunctuation(text string) string {
	if text == "" {
		return text
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	if unicode.IsLetter(last) || unicode.IsDigit(last) {
		return text + "."
	}
	return text
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
