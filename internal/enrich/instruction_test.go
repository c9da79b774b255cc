package enrich

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptforge/internal/types"
)

func TestBuildInstruction_NilContext(t *testing.T) {
	got := buildInstruction("make a website", nil)

	assert.True(t, strings.HasPrefix(got, enhancementInstruction))
	assert.NotContains(t, got, "Conversation context:")
	assert.Contains(t, got, "\n\nUser input: make a website\nEnhanced:")
	assert.True(t, strings.HasSuffix(got, "Enhanced:"))
}

func TestBuildInstruction_EmptyContextOmitted(t *testing.T) {
	got := buildInstruction("fix my code", &types.ConversationContext{})
	assert.NotContains(t, got, "Conversation context:")
}

func TestBuildInstruction_ContextBetweenInstructionAndInput(t *testing.T) {
	conv := &types.ConversationContext{ProjectContext: []string{"Go monorepo"}}
	got := buildInstruction("add a cache", conv)

	ctxAt := strings.Index(got, "Conversation context:")
	inputAt := strings.Index(got, "User input:")
	require.Greater(t, ctxAt, 0)
	require.Greater(t, inputAt, ctxAt)
}

func TestContextBlock_Bounds(t *testing.T) {
	numbered := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s %d", prefix, i+1)
		}
		return out
	}

	conv := &types.ConversationContext{
		Todos:            numbered("todo", 8),
		ProjectContext:   numbered("project", 7),
		LastActions:      numbered("action", 6),
		PreviousMessages: numbered("message", 5),
	}
	block := contextBlock(conv)

	t.Run("todos capped at five newest", func(t *testing.T) {
		assert.NotContains(t, block, "todo 3")
		assert.Contains(t, block, "- todo 4")
		assert.Contains(t, block, "- todo 8")
	})
	t.Run("project context unbounded", func(t *testing.T) {
		assert.Contains(t, block, "- project 1")
		assert.Contains(t, block, "- project 7")
	})
	t.Run("actions capped at three newest", func(t *testing.T) {
		assert.NotContains(t, block, "action 3\n")
		assert.Contains(t, block, "- action 4")
		assert.Contains(t, block, "- action 6")
	})
	t.Run("messages capped at two newest", func(t *testing.T) {
		assert.NotContains(t, block, "- message 3\n")
		assert.Contains(t, block, "- message 4")
		assert.Contains(t, block, "- message 5")
	})
}

func TestContextBlock_SectionOrderAndOmission(t *testing.T) {
	conv := &types.ConversationContext{
		Todos:       []string{"wire the logger"},
		LastActions: []string{"edited main.go"},
	}
	block := contextBlock(conv)

	todosAt := strings.Index(block, "Current todos:")
	actionsAt := strings.Index(block, "Recent actions:")
	require.Greater(t, todosAt, 0)
	require.Greater(t, actionsAt, todosAt)
	assert.NotContains(t, block, "Project context:")
	assert.NotContains(t, block, "Previous messages:")
}

func TestLastN(t *testing.T) {
	entries := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"c", "d"}, lastN(entries, 2))
	assert.Equal(t, entries, lastN(entries, 4))
	assert.Equal(t, entries, lastN(entries, 10))
	assert.Empty(t, lastN(nil, 3))
}
