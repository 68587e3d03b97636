package ui

import (
	"fmt"
	"time"
)

// Status is the per-frame information shown on the HUD.
type Status struct {
	FPS        float64
	FrameTime  time.Duration
	Paused     bool
	Generation int
	Population int
	Timestep   int
}

// Lines returns the HUD text, one entry per line, top to bottom.
func Lines(s Status) []string {
	paused := 0
	if s.Paused {
		paused = 1
	}
	ms := float64(s.FrameTime) / float64(time.Millisecond)
	return []string{
		fmt.Sprintf("FPS: %d / %.3fms", int(s.FPS), ms),
		fmt.Sprintf("[SPACE] Paused: %d", paused),
		fmt.Sprintf("Generation: %d (1 per %d frames)", s.Generation, s.Timestep),
		fmt.Sprintf("Population: %d", s.Population),
		"[G] Draw Grid",
		"[S] Save",
		"[L] Load",
		"[U] Draw UI",
		"[C] Clear",
		"[N] Step  [R] Reset",
	}
}

// gridLineOffsets returns the pixel offset of the line drawn before each of
// n cells of size scale.
func gridLineOffsets(n, scale int) []float64 {
	if n <= 0 || scale <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i * scale)
	}
	return out
}
