package components

import (
	"strings"
	"testing"
)

func TestProgressBarFill(t *testing.T) {
	tests := []struct {
		percent    float64
		wantFilled int
	}{
		{0, 0},
		{0.5, 10},
		{1, 20},
		{1.7, 20},
		{-1, 0},
	}
	for _, tt := range tests {
		view := NewProgressBar("", tt.percent, false, 20).View()
		if got := strings.Count(view, filledCell); got != tt.wantFilled {
			t.Errorf("percent %v: filled = %d, want %d", tt.percent, got, tt.wantFilled)
		}
		if got := strings.Count(view, filledCell) + strings.Count(view, emptyCell); got != 20 {
			t.Errorf("percent %v: width = %d, want 20", tt.percent, got)
		}
	}
}

func TestProgressBarPercentLabel(t *testing.T) {
	view := NewProgressBar("Level 2", 0.42, true, 40).View()
	if !strings.Contains(view, "Level 2") {
		t.Errorf("missing label in %q", view)
	}
	if !strings.Contains(view, "42%") {
		t.Errorf("missing percent in %q", view)
	}
}
