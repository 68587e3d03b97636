package ui

import (
	"slices"
	"testing"
	"time"
)

func TestLines(t *testing.T) {
	lines := Lines(Status{
		FPS:        59.7,
		FrameTime:  16667 * time.Microsecond,
		Paused:     true,
		Generation: 12,
		Population: 5,
		Timestep:   6,
	})
	want := []string{
		"FPS: 59 / 16.667ms",
		"[SPACE] Paused: 1",
		"Generation: 12 (1 per 6 frames)",
		"Population: 5",
	}
	if !slices.Equal(lines[:len(want)], want) {
		t.Fatalf("Lines()[:4] = %q, want %q", lines[:len(want)], want)
	}
	for _, key := range []string{"[G] Draw Grid", "[S] Save", "[L] Load", "[U] Draw UI", "[C] Clear"} {
		if !slices.Contains(lines, key) {
			t.Fatalf("Lines() missing %q", key)
		}
	}

	if got := Lines(Status{})[1]; got != "[SPACE] Paused: 0" {
		t.Fatalf("running status = %q", got)
	}
}

func TestGridLineOffsets(t *testing.T) {
	if got := gridLineOffsets(4, 10); !slices.Equal(got, []float64{0, 10, 20, 30}) {
		t.Fatalf("gridLineOffsets(4, 10) = %v", got)
	}
	if gridLineOffsets(0, 10) != nil || gridLineOffsets(3, 0) != nil {
		t.Fatal("degenerate input should give no lines")
	}
}
