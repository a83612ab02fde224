package sandbox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/worldmind/worldmind/pkg/models"
)

func TestTruncateOutput(t *testing.T) {
	t.Run("short output passes through", func(t *testing.T) {
		out := TruncateOutput("hello", 100)
		assert.Equal(t, "hello", out)
	})

	t.Run("long output keeps head and tail around marker", func(t *testing.T) {
		input := strings.Repeat("a", 500) + strings.Repeat("z", 500)
		out := TruncateOutput(input, 300)

		assert.LessOrEqual(t, len(out), 300)
		assert.Contains(t, out, "[output truncated]")
		assert.True(t, strings.HasPrefix(out, "a"), "head should be preserved")
		assert.True(t, strings.HasSuffix(out, "z"), "tail should be preserved")
	})

	t.Run("head gets roughly two thirds of the budget", func(t *testing.T) {
		input := strings.Repeat("a", 10_000)
		out := TruncateOutput(input, 900)

		parts := strings.Split(out, elisionMarker)
		assert.Len(t, parts, 2)
		assert.Greater(t, len(parts[0]), len(parts[1]))
	})

	t.Run("zero max is unlimited", func(t *testing.T) {
		input := strings.Repeat("x", 1000)
		assert.Equal(t, input, TruncateOutput(input, 0))
	})

	t.Run("tiny budget falls back to hard cut", func(t *testing.T) {
		out := TruncateOutput(strings.Repeat("x", 100), 5)
		assert.Equal(t, "xxxxx", out)
	})
}

func TestInfo(t *testing.T) {
	req := OpenRequest{Agent: models.RoleCoder, TaskID: "TASK-001", Iteration: 2}
	assert.Equal(t, "CODER/TASK-001 iter=2", Info(req))
}
