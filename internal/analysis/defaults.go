package analysis

import "promptforge/internal/types"

// fallbackTask is used when analysis produced no task at all.
const fallbackTask = "Help me with my request."

// defaultTone is applied when no tone signal was detected.
const defaultTone = "Professional and helpful"

// roleInference maps task content to a persona when no role was detected.
// Checked in order, first match wins.
var roleInference = []detection{
	{re(`(?i)\b(website|web)\b`), "Expert full-stack web developer proficient in HTML, CSS, and JavaScript"},
	{re(`(?i)\b(code|program|script|debug|function|app)\b`), "Experienced software developer"},
	{re(`(?i)\b(data|analy[sz]e|statistics|chart)\b`), "Data analyst"},
	{re(`(?i)\b(design|ui|ux|interface|layout)\b`), "UI/UX designer"},
	{re(`(?i)\b(write|document|draft|article)\b`), "Technical writer"},
}

// formatInference maps task content to an output format when none was
// detected. Checked in order, first match wins.
var formatInference = []detection{
	{re(`(?i)\b(website|web)\b`), "Complete, scaffolded code blocks for each file of the site"},
	{re(`(?i)\b(code|program|script|function|app)\b`), "A commented code block"},
	{re(`(?i)\b(step|guide|process|how)\b`), "Numbered steps"},
	{re(`(?i)\b(list|options|ideas)\b`), "A bulleted list"},
	{re(`(?i)\b(explain|describe|why|what)\b`), "A clear explanation with examples"},
}

// ApplyDefaults completes a partial StructuredPrompt. After it runs the
// task is always non-empty and the tone is always set; constraints and
// examples are never defaulted. Every filled slot is recorded in
// InferredMissingDetails, in role, output format, tone order.
func ApplyDefaults(partial types.StructuredPrompt) types.StructuredPrompt {
	out := partial

	if out.Task == "" {
		out.Task = fallbackTask
	}

	if out.Role == "" {
		if role := firstMatch(roleInference, out.Task); role != "" {
			out.Role = role
			out.InferredMissingDetails = append(out.InferredMissingDetails,
				"Role inferred from task content: "+role)
		}
	}

	if out.OutputFormat == "" {
		if format := firstMatch(formatInference, out.Task); format != "" {
			out.OutputFormat = format
			out.InferredMissingDetails = append(out.InferredMissingDetails,
				"Output format inferred from task content: "+format)
		}
	}

	if out.Tone == "" {
		out.Tone = defaultTone
		out.InferredMissingDetails = append(out.InferredMissingDetails,
			"Tone defaulted to: "+defaultTone)
	}

	return out
}
