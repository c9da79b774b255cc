// Package lexicon - embedded misspelling corpus.
// The typo dictionary is baked into the binary with go:embed so the
// corrector has no filesystem dependency and loads exactly once.
package lexicon

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed typos.yaml
var embeddedTypos []byte

// typoCorpus mirrors the YAML layout of typos.yaml.
type typoCorpus struct {
	Typos map[string]string `yaml:"typos"`
}

// typoRule is one compiled dictionary entry. The pattern matches the
// misspelling as a whole word, case-insensitively, so substrings of longer
// legitimate words are never touched.
type typoRule struct {
	misspelling string
	canonical   string
	pattern     *regexp.Regexp
}

// typoRules is the compiled corpus, built once at init. Rules are sorted by
// misspelling for deterministic application order.
var typoRules = mustLoadTypoRules()

func mustLoadTypoRules() []typoRule {
	rules, err := loadTypoRules(embeddedTypos)
	if err != nil {
		panic(fmt.Sprintf("lexicon: embedded typo corpus invalid: %v", err))
	}
	return rules
}

func loadTypoRules(data []byte) ([]typoRule, error) {
	var corpus typoCorpus
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse typo corpus: %w", err)
	}
	if len(corpus.Typos) == 0 {
		return nil, fmt.Errorf("typo corpus is empty")
	}

	// Idempotence guard: a canonical form must never itself be a key,
	// otherwise correct(correct(x)) could diverge from correct(x).
	for miss, canon := range corpus.Typos {
		if _, ok := corpus.Typos[canon]; ok {
			return nil, fmt.Errorf("canonical form %q of %q is also a misspelling key", canon, miss)
		}
	}

	keys := make([]string, 0, len(corpus.Typos))
	for miss := range corpus.Typos {
		keys = append(keys, miss)
	}
	sort.Strings(keys)

	rules := make([]typoRule, 0, len(keys))
	for _, miss := range keys {
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(miss) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for %q: %w", miss, err)
		}
		rules = append(rules, typoRule{
			misspelling: miss,
			canonical:   corpus.Typos[miss],
			pattern:     pattern,
		})
	}
	return rules, nil
}
