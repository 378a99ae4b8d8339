package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress_Clamps(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
	}{
		{"zero", 0},
		{"half", 50},
		{"full", 100},
		{"over full clamps", 150},
		{"negative clamps", -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, 10)
			assert.Contains(t, got, "[")
			assert.Contains(t, got, "%")
		})
	}
}

func TestRenderProgress_Blocks(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 4), emptyBlock)
	assert.Contains(t, RenderProgress(100, 4), filledBlock)
	assert.Contains(t, RenderProgress(100, 4), "100%")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"NAME", "COUNT"}, [][]string{
		{"short", "1"},
		{"a much longer name", "22"},
	})
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "a much longer name")
	assert.Contains(t, out, "─")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
