package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptforge/internal/types"
)

func TestApplyDefaults_WebsiteScenario(t *testing.T) {
	partial := Analyze("Make a website.")
	got := ApplyDefaults(partial)

	assert.Contains(t, got.Role, "full-stack web developer")
	assert.Contains(t, got.OutputFormat, "scaffolded")
	assert.Equal(t, defaultTone, got.Tone)

	// Inference notes appear in role, output format, tone order.
	require.Len(t, got.InferredMissingDetails, 3)
	assert.Contains(t, got.InferredMissingDetails[0], "Role inferred")
	assert.Contains(t, got.InferredMissingDetails[1], "Output format inferred")
	assert.Contains(t, got.InferredMissingDetails[2], "Tone defaulted")
}

func TestApplyDefaults_Totality(t *testing.T) {
	inputs := []string{
		"make a website",
		"fix my code",
		"explain recursion",
		"calculate the sum of the first ten primes",
		"write a python script",
	}
	for _, input := range inputs {
		got := ApplyDefaults(Analyze(input))
		assert.NotEmpty(t, got.Task, "task must be set for %q", input)
		assert.NotEmpty(t, got.Tone, "tone must be set for %q", input)
	}
}

func TestApplyDefaults_FallbackTask(t *testing.T) {
	got := ApplyDefaults(types.StructuredPrompt{})
	assert.Equal(t, fallbackTask, got.Task)
	assert.Equal(t, defaultTone, got.Tone)
}

func TestApplyDefaults_DetectedSlotsPreserved(t *testing.T) {
	partial := types.StructuredPrompt{
		Task: "Build a dashboard.",
		Role: "Expert frontend developer",
		Tone: "Casual and friendly",
	}
	got := ApplyDefaults(partial)

	assert.Equal(t, "Expert frontend developer", got.Role)
	assert.Equal(t, "Casual and friendly", got.Tone)
	for _, note := range got.InferredMissingDetails {
		assert.NotContains(t, note, "Role inferred")
		assert.NotContains(t, note, "Tone defaulted")
	}
}

func TestApplyDefaults_ConstraintsAndExamplesNeverDefaulted(t *testing.T) {
	got := ApplyDefaults(types.StructuredPrompt{Task: "Fix the bug."})
	assert.Empty(t, got.Constraints)
	assert.Empty(t, got.Examples)
}

func TestFormat_SectionOrderAndOmission(t *testing.T) {
	t.Run("all sections in order", func(t *testing.T) {
		sp := types.StructuredPrompt{
			Task:         "Build a parser.",
			Role:         "Expert Go backend developer",
			Constraints:  "Handle every error explicitly.",
			Examples:     "Input: a+b, Output: AST",
			OutputFormat: "A code block with inline comments",
			Tone:         "Professional and helpful",
		}
		got := Format(sp)

		labels := []string{"[Role/Persona]", "[Task/Goal]", "[Constraints/Rules]", "[Examples]", "[Output Format]", "[Tone/Style]"}
		last := -1
		for _, label := range labels {
			idx := strings.Index(got, label)
			require.GreaterOrEqual(t, idx, 0, "missing section %s", label)
			assert.Greater(t, idx, last, "section %s out of order", label)
			last = idx
		}
	})
	t.Run("empty slots are skipped", func(t *testing.T) {
		got := Format(types.StructuredPrompt{Task: "Fix the bug.", Tone: "Professional and helpful"})
		assert.NotContains(t, got, "[Role/Persona]")
		assert.NotContains(t, got, "[Constraints/Rules]")
		assert.NotContains(t, got, "[Examples]")
		assert.Contains(t, got, "[Task/Goal]\nFix the bug.")
		assert.Contains(t, got, "[Tone/Style]\nProfessional and helpful")
	})
}
