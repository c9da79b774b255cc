package analysis

import (
	"strings"

	"promptforge/internal/types"
)

// Format renders a StructuredPrompt as the labeled multi-section block.
// Sections appear in a fixed order and empty slots are skipped entirely;
// Task is the only section guaranteed to be present after ApplyDefaults.
func Format(sp types.StructuredPrompt) string {
	var b strings.Builder

	section := func(label, value string) {
		if value == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[" + label + "]\n")
		b.WriteString(value)
	}

	section("Role/Persona", sp.Role)
	section("Task/Goal", sp.Task)
	section("Constraints/Rules", sp.Constraints)
	section("Examples", sp.Examples)
	section("Output Format", sp.OutputFormat)
	section("Tone/Style", sp.Tone)

	return b.String()
}
