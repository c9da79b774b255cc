// Package types defines the shared value types passed between promptforge
// components. Everything here is request-scoped: values are built at the
// start of one enhancement call and discarded when the caller is done.
package types

// ConversationContext is a caller-supplied summary of prior dialogue.
// The core only reads it; how the caller derived it (markdown scraping,
// emoji markers, whatever) is none of our business. Each slice is expected
// to be bounded by the caller, newest entries last.
type ConversationContext struct {
	PreviousMessages []string `yaml:"previous_messages" json:"previous_messages"`
	Todos            []string `yaml:"todos" json:"todos"`
	ProjectContext   []string `yaml:"project_context" json:"project_context"`
	LastActions      []string `yaml:"last_actions" json:"last_actions"`
}

// IsEmpty reports whether the context carries nothing worth sending along.
func (c *ConversationContext) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.PreviousMessages) == 0 &&
		len(c.Todos) == 0 &&
		len(c.ProjectContext) == 0 &&
		len(c.LastActions) == 0
}

// StructuredPrompt is the slot decomposition of a prompt. Task is required
// once defaulting has run; every other slot is either a detected value or
// the empty string, which means "absent" (never rendered).
type StructuredPrompt struct {
	Task         string
	Role         string
	Constraints  string
	Examples     string
	OutputFormat string
	Tone         string

	// InferredMissingDetails lists, in application order, the slots that
	// were filled by inference or defaulting instead of detection.
	InferredMissingDetails []string
}
