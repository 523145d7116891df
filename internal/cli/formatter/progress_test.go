package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		want  string
	}{
		{"empty", 0, 4, "  0%"},
		{"half", 0.5, 4, " 50%"},
		{"full", 1, 4, "100%"},
		{"over clamps", 1.7, 4, "100%"},
		{"negative clamps", -0.3, 4, "  0%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderProgress(tt.pct, tt.width)
			assert.Contains(t, got, tt.want)
			assert.Contains(t, got, "[")
		})
	}
}

func TestRenderBudget(t *testing.T) {
	got := RenderBudget(90, 600, 10)
	assert.Contains(t, got, "1h 30m / 10h")

	over := RenderBudget(700, 600, 10)
	assert.Contains(t, over, "11h 40m / 10h")
	assert.NotContains(t, over, emptyBlock, "an overfull budget bar is solid")
}

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		dim   bool
	}{
		{"0% normal", 0.0, 10, false},
		{"50% normal", 0.5, 10, false},
		{"50% dimmed", 0.5, 10, true},
		{"over 100% clamps", 1.5, 10, false},
		{"tiny width clamps to 2", 0.5, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
		})
	}
	assert.Contains(t, RenderCompactBar(0, 4, true), emptyBlock)
	assert.Contains(t, RenderCompactBar(1, 4, true), filledBlock)
}
