package enrich

import (
	"strings"

	"promptforge/internal/types"
)

// Caller-side bounds on how much conversation context travels with one
// enrichment request. Project context is always sent in full.
const (
	maxContextTodos    = 5
	maxContextActions  = 3
	maxContextMessages = 2
)

// enhancementInstruction is the fixed system instruction sent with every
// request. User input is embedded verbatim below it; that is an accepted
// tradeoff of this design, not something to sanitize away.
const enhancementInstruction = `You are a prompt enhancement engine for a code-generation assistant.

Given a short, possibly vague user prompt, produce a longer, specific,
well-structured version of it. Rules:
1. Detect the technical domain of the request and write the enhanced
   prompt as if briefing an expert in that domain.
2. Restructure vague phrasing into concrete, actionable instructions:
   what to build, with which technologies, in what output format.
3. Preserve the user's intent exactly. Add specificity, never new goals.
4. Respond with ONLY the enhanced prompt. No commentary, no preamble,
   no surrounding quotes.

Examples:

Input: make a website
Enhanced: Act as an expert full-stack web developer. Create a fully
functional, responsive website with a clean modern layout. Provide
complete HTML, CSS, and JavaScript in separate code blocks, use semantic
markup, and make the design work on both mobile and desktop.

Input: fix my python code
Enhanced: Act as an experienced Python developer. Review the following
Python code for bugs, explain the root cause of each problem you find,
and provide a corrected version following PEP 8 with type hints. Present
the fixes as a commented code block followed by a short summary of the
changes.`

// buildInstruction assembles the single text block for one request:
// system instruction, optional conversation context, the literal user
// input, and a final instruction marker.
func buildInstruction(prompt string, conv *types.ConversationContext) string {
	var b strings.Builder
	b.WriteString(enhancementInstruction)

	if block := contextBlock(conv); block != "" {
		b.WriteString("\n\n")
		b.WriteString(block)
	}

	b.WriteString("\n\nUser input: ")
	b.WriteString(prompt)
	b.WriteString("\nEnhanced:")
	return b.String()
}

// contextBlock renders the bounded conversation context under labeled
// headings. Returns "" when there is nothing to render.
func contextBlock(conv *types.ConversationContext) string {
	if conv.IsEmpty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("Conversation context:")

	writeSection := func(heading string, entries []string) {
		if len(entries) == 0 {
			return
		}
		b.WriteString("\n\n" + heading + ":")
		for _, entry := range entries {
			b.WriteString("\n- " + entry)
		}
	}

	writeSection("Current todos", lastN(conv.Todos, maxContextTodos))
	writeSection("Project context", conv.ProjectContext)
	writeSection("Recent actions", lastN(conv.LastActions, maxContextActions))
	writeSection("Previous messages", lastN(conv.PreviousMessages, maxContextMessages))

	return b.String()
}

// lastN returns the trailing n entries (newest last).
func lastN(entries []string, n int) []string {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}
