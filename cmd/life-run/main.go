// Command life-run advances Life grids without a window. Each positional
// argument is a save file; with none, one grid is seeded from the flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"

	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	frames := flag.Int("frames", 60, "host frames to simulate per grid")
	workers := flag.Int("workers", runtime.NumCPU(), "grids run in parallel")
	outDir := flag.String("out", "", "directory for the final state of each grid")
	printGrids := flag.Bool("print", false, "print each final grid to stdout")
	showParams := flag.Bool("params", false, "print the settings of each grid")
	var overrides kvList
	flag.Var(&overrides, "set", "grid setting in key=value form: w, h, timestep, pattern, seed, density (repeatable)")
	flag.Parse()

	settings := make(map[string]string, len(overrides))
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		settings[parts[0]] = parts[1]
	}
	cfg := life.FromMap(settings)

	var jobs []job
	for _, path := range flag.Args() {
		jobs = append(jobs, job{Name: filepath.Base(path), Path: path, Cfg: cfg})
	}
	if len(jobs) == 0 {
		jobs = append(jobs, job{Name: cfg.Pattern, Cfg: cfg})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := runAll(ctx, jobs, options{
		Frames:  *frames,
		Workers: *workers,
		OutDir:  *outDir,
		Print:   *printGrids,
	})
	if err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		fmt.Printf("%s: generation %d, population %d\n", res.Name, res.Generations, res.Population)
		if *showParams {
			printParams(res.Params)
		}
		if res.Saved != "" {
			fmt.Printf("  saved to %s\n", res.Saved)
		}
		if res.Text != nil {
			os.Stdout.Write(res.Text)
		}
	}
}

func printParams(s core.ParameterSnapshot) {
	for _, g := range s.Groups {
		fmt.Printf("  %s:\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("    %s=%s\n", p.Key, p.Value)
		}
	}
}
