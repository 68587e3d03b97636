package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"mad-life/internal/render"
	"mad-life/internal/save"
	"mad-life/pkg/core"
	"mad-life/pkg/sims/life"
)

// job is one grid to run. Path is empty for pattern-seeded jobs.
type job struct {
	Name string
	Path string
	Cfg  life.Config

	// Out is the save file name inside options.OutDir.
	Out string
}

type options struct {
	Frames  int
	Workers int
	OutDir  string
	Print   bool
}

type result struct {
	Name        string
	Generations int
	Population  int
	Saved       string
	Text        []byte
	Params      core.ParameterSnapshot
}

// runAll runs every job with at most opts.Workers in flight. Results keep the
// order of jobs. The first failing job cancels the rest.
func runAll(ctx context.Context, jobs []job, opts options) ([]result, error) {
	results := make([]result, len(jobs))
	names := outNames(jobs, opts.Frames)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, j := range jobs {
		j.Out = names[i]
		g.Go(func() error {
			res, err := runJob(ctx, j, opts)
			if err != nil {
				return errors.Wrapf(err, "job %s", j.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func loadJob(j job) (*life.Life, error) {
	if j.Path != "" {
		return save.ReadFile(j.Path, j.Cfg)
	}
	grid, err := life.NewWithConfig(j.Cfg)
	if err != nil {
		return nil, err
	}
	if err := grid.Reset(j.Cfg.Seed); err != nil {
		return nil, err
	}
	return grid, nil
}

// runJob feeds the grid opts.Frames host frames through Advance, so the
// number of generations follows the grid's timestep.
func runJob(ctx context.Context, j job, opts options) (result, error) {
	grid, err := loadJob(j)
	if err != nil {
		return result{}, err
	}
	for range opts.Frames {
		if grid.Advance() {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
	}

	res := result{
		Name:        j.Name,
		Generations: grid.Generation(),
		Population:  grid.Population(),
		Params:      grid.Parameters(),
	}
	if opts.OutDir != "" {
		name := j.Out
		if name == "" {
			name = outName(j.Name, opts.Frames)
		}
		store := save.NewStore(opts.OutDir)
		if err := store.Save(name, grid); err != nil {
			return result{}, err
		}
		res.Saved = store.Path(name)
	}
	if opts.Print {
		var buf bytes.Buffer
		if err := render.Text(&buf, grid, render.Block, render.Blank); err != nil {
			return result{}, err
		}
		res.Text = buf.Bytes()
	}
	return res, nil
}

func outName(name string, frames int) string {
	return fmt.Sprintf("%s-f%d.txt", baseName(name), frames)
}

func baseName(name string) string {
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

// outNames gives every job its own save file name. Later jobs whose name is
// already taken get a numeric suffix, so two inputs called board.txt in
// different directories never overwrite each other.
func outNames(jobs []job, frames int) []string {
	names := make([]string, len(jobs))
	used := make(map[string]bool, len(jobs))
	for i, j := range jobs {
		name := outName(j.Name, frames)
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d-f%d.txt", baseName(j.Name), n, frames)
		}
		used[name] = true
		names[i] = name
	}
	return names
}
