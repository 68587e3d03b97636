package core

import "testing"

func TestThrottleFiresEveryN(t *testing.T) {
	th := NewThrottle(3)
	var fired []int
	for i := 1; i <= 9; i++ {
		if th.Tick() {
			fired = append(fired, i)
		}
	}
	if len(fired) != 3 || fired[0] != 3 || fired[1] != 6 || fired[2] != 9 {
		t.Fatalf("fired on calls %v, want [3 6 9]", fired)
	}
	if th.Count() != 0 {
		t.Fatalf("Count() = %d after a tick, want 0", th.Count())
	}
}

func TestThrottleResetAndFloor(t *testing.T) {
	th := NewThrottle(4)
	th.Tick()
	th.Tick()
	th.Reset()
	if th.Count() != 0 {
		t.Fatalf("Count() = %d after Reset", th.Count())
	}

	if NewThrottle(0).Every() != 1 {
		t.Fatal("non-positive interval should clamp to 1")
	}
	if !NewThrottle(-2).Tick() {
		t.Fatal("interval 1 fires on every call")
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	if len(g.Cells()) != 6 {
		t.Fatalf("len(Cells()) = %d, want 6", len(g.Cells()))
	}
	for _, c := range [][2]int{{0, 0}, {2, 1}} {
		if !g.InBounds(c[0], c[1]) {
			t.Fatalf("(%d,%d) should be in bounds", c[0], c[1])
		}
	}
	for _, c := range [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		if g.InBounds(c[0], c[1]) {
			t.Fatalf("(%d,%d) should be out of bounds", c[0], c[1])
		}
	}

	g.Set(2, 1, 1)
	if g.At(2, 1) != 1 || g.Cells()[g.Index(2, 1)] != 1 || g.Index(2, 1) != 5 {
		t.Fatal("Set/At/Index disagree on row-major layout")
	}
	g.Clear()
	if g.At(2, 1) != 0 {
		t.Fatal("Clear should zero the grid")
	}
}

func TestRNGFillBinaryDeterministic(t *testing.T) {
	a := make([]uint8, 64)
	b := make([]uint8, 64)
	NewRNG(5).FillBinary(a, 0.5)
	NewRNG(5).FillBinary(b, 0.5)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs between identical seeds", i)
		}
		if a[i] > 1 {
			t.Fatalf("cell %d = %d, want 0 or 1", i, a[i])
		}
	}

	NewRNG(5).FillBinary(a, 0)
	for i, v := range a {
		if v != 0 {
			t.Fatalf("density 0 left cell %d alive", i)
		}
	}
}

func TestParameterSnapshotValues(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "w", Value: "3"}}},
		{Name: "b", Params: []Parameter{{Key: "pattern", Value: "glider"}, {Key: "w", Value: "4"}}},
	}}
	got := s.Values()
	if len(got) != 2 || got["w"] != "4" || got["pattern"] != "glider" {
		t.Fatalf("Values() = %v", got)
	}
}
