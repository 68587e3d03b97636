package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"mad-life/internal/save"
	"mad-life/pkg/sims/life"
)

func patternJob(t *testing.T, pattern string) job {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Timestep = 2
	cfg.Pattern = pattern
	return job{Name: pattern, Cfg: cfg}
}

func TestRunAllKeepsOrder(t *testing.T) {
	jobs := []job{patternJob(t, "glider"), patternJob(t, "blinker"), patternJob(t, "empty")}
	results, err := runAll(context.Background(), jobs, options{Frames: 8, Workers: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(jobs) {
		t.Fatalf("got %d results, want %d", len(results), len(jobs))
	}
	want := []struct {
		name string
		pop  int
	}{{"glider", 5}, {"blinker", 3}, {"empty", 0}}
	for i, w := range want {
		if results[i].Name != w.name || results[i].Population != w.pop {
			t.Fatalf("results[%d] = %+v, want name %s population %d", i, results[i], w.name, w.pop)
		}
		if results[i].Generations != 4 {
			t.Fatalf("results[%d].Generations = %d, want 4", i, results[i].Generations)
		}
	}
}

func TestRunJobSavesAndPrints(t *testing.T) {
	dir := t.TempDir()
	res, err := runJob(context.Background(), patternJob(t, "blinker"), options{Frames: 2, OutDir: dir, Print: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Saved != filepath.Join(dir, "blinker-f2.txt") {
		t.Fatalf("Saved = %q", res.Saved)
	}
	if _, err := os.Stat(res.Saved); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(res.Text), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("printed %d rows, want 10", len(lines))
	}
}

func TestRunJobFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.txt")
	if err := os.WriteFile(path, []byte("5\n5\n00000\n00000\n01110\n00000\n00000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := life.DefaultConfig()
	cfg.Timestep = 1
	res, err := runJob(context.Background(), job{Name: "line.txt", Path: path, Cfg: cfg}, options{Frames: 1, Print: true})
	if err != nil {
		t.Fatal(err)
	}
	if res.Generations != 1 || res.Population != 3 {
		t.Fatalf("result = %+v", res)
	}
	if v := res.Params.Values(); v["w"] != "5" || v["h"] != "5" || v["timestep"] != "1" {
		t.Fatalf("Params = %v", v)
	}
	want := "" +
		"          \n" +
		"    ██    \n" +
		"    ██    \n" +
		"    ██    \n" +
		"          \n"
	if string(res.Text) != want {
		t.Fatalf("Text =\n%s\nwant\n%s", res.Text, want)
	}
}

func TestRunAllStopsOnBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("2\n2\n01\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	jobs := []job{patternJob(t, "glider"), {Name: "bad.txt", Path: path, Cfg: life.DefaultConfig()}}
	if _, err := runAll(context.Background(), jobs, options{Frames: 4, Workers: 1}); !errors.Is(err, save.ErrFormat) {
		t.Fatalf("err = %v, want ErrFormat", err)
	}
}

func TestRunJobCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runJob(ctx, patternJob(t, "glider"), options{Frames: 10}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestOutName(t *testing.T) {
	if got := outName("saves/board.txt", 30); got != "board-f30.txt" {
		t.Fatalf("outName = %q", got)
	}
	if got := outName("glider", 6); got != "glider-f6.txt" {
		t.Fatalf("outName = %q", got)
	}
}

func TestRunAllSameBaseNameDoesNotCollide(t *testing.T) {
	root := t.TempDir()
	var jobs []job
	for _, dir := range []string{"a", "b"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
		path := filepath.Join(root, dir, "board.txt")
		body := "2\n2\n11\n00\n"
		if dir == "b" {
			body = "2\n2\n00\n00\n"
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		jobs = append(jobs, job{Name: "board.txt", Path: path, Cfg: life.DefaultConfig()})
	}

	out := filepath.Join(root, "out")
	results, err := runAll(context.Background(), jobs, options{Frames: 1, Workers: 2, OutDir: out})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Saved == results[1].Saved {
		t.Fatalf("both jobs saved to %s", results[0].Saved)
	}
	for i, want := range []string{"2\n2\n11\n00\n", "2\n2\n00\n00\n"} {
		data, err := os.ReadFile(results[i].Saved)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != want {
			t.Fatalf("%s = %q, want %q", results[i].Saved, data, want)
		}
	}
}

func TestOutNamesUnique(t *testing.T) {
	jobs := []job{{Name: "board.txt"}, {Name: "board.txt"}, {Name: "board-2.txt"}, {Name: "board.txt"}}
	got := outNames(jobs, 6)
	want := []string{"board-f6.txt", "board-2-f6.txt", "board-2-2-f6.txt", "board-3-f6.txt"}
	if !slices.Equal(got, want) {
		t.Fatalf("outNames = %v, want %v", got, want)
	}
}
