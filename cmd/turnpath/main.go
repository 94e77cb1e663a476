// cmd/turnpath/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// turnpath builds routes for vehicles with a minimum turn radius from
// a JSON file of plans, or from randomly generated ones, and writes them
// out as text, JSON, msgpack or SVG.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/goforj/godump"
	"golang.org/x/sync/errgroup"

	"github.com/mmp/turnpath/log"
	"github.com/mmp/turnpath/rand"
	"github.com/mmp/turnpath/route"
	"github.com/mmp/turnpath/util"
)

var (
	planFile     = flag.String("plan", "", "JSON file of plans to build")
	outFile      = flag.String("out", "", "file to write output to (default: stdout)")
	format       = flag.String("format", "text", "output format: json, msgpack, svg or text")
	subdivisions = flag.Int("subdivisions", route.DefaultSubdivisions, "number of segments that arcs are split into for output")
	sample       = flag.Float64("sample", 0, "if positive, output points along each route at this spacing")
	randomPlans  = flag.Int("random", 0, "number of random plans to generate")
	seed         = flag.Int64("seed", 0, "seed for random plans (default: based on the time)")
	radius       = flag.Float64("radius", 50, "turn radius for random plans")
	logLevel     = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir       = flag.String("logdir", "", "directory for log files; \"-\" logs to stderr")
	dump         = flag.Bool("dump", false, "dump the plans to stderr before building them")
	workers      = flag.Int("workers", runtime.NumCPU(), "maximum number of plans to build concurrently")
	useCache     = flag.Bool("cache", false, "reuse routes built for identical plans in earlier runs")
	cacheDir     = flag.String("cachedir", "", "directory for cached routes (default: user cache directory)")
)

// maxCacheBytes bounds the size of the route cache.
const maxCacheBytes = 64 * 1024 * 1024

// result is a plan along with the route built from it, or the error
// encountered trying.
type result struct {
	Plan  route.Plan
	Route route.Route
	Err   error
}

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	if _, err := formatter(*format); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	plans, err := loadPlans(lg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	if *dump {
		godump.Fdump(os.Stderr, plans)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cache, err := openCache()
	if err != nil {
		lg.Warnf("route cache: %v", err)
	}

	results, err := buildAll(ctx, plans, *workers, cache, lg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintln(os.Stderr, r.Err)
			failed++
		}
	}
	lg.Info("built plans", slog.Int("plans", len(results)), slog.Int("failed", failed))

	if cache != nil {
		if err := cache.Cull(maxCacheBytes); err != nil {
			lg.Warnf("%s: %v", cache.Dir, err)
		}
	}

	if err := checkSampling(results, *sample); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeOutput(results); err != nil {
		fmt.Fprintln(os.Stderr, err)
		lg.Errorf("%s: %v", *outFile, err)
		os.Exit(1)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func loadPlans(lg *log.Logger) ([]route.Plan, error) {
	if *randomPlans > 0 {
		s := *seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		lg.Info("generating random plans", slog.Int("count", *randomPlans), slog.Int64("seed", s))

		r := rand.Make()
		r.Seed(s)
		plans := generatePlans(&r, *randomPlans, *radius)

		var e util.ErrorLogger
		for i := range plans {
			plans[i].Check(&e)
		}
		if e.HaveErrors() {
			e.PrintErrors(lg)
			return nil, fmt.Errorf("random plans: %d errors", len(e.Errors()))
		}
		return plans, nil
	}

	if *planFile == "" {
		return nil, errors.New("must specify either -plan or -random")
	}
	contents, err := os.ReadFile(*planFile)
	if err != nil {
		return nil, err
	}

	var e util.ErrorLogger
	e.Push(*planFile)
	plans := route.LoadPlans(contents, &e)
	e.Pop()
	if e.HaveErrors() {
		e.PrintErrors(lg)
		return nil, fmt.Errorf("%s: %d errors", *planFile, len(e.Errors()))
	}
	return plans, nil
}

func openCache() (*util.Cache, error) {
	if !*useCache {
		return nil, nil
	}
	dir := *cacheDir
	if dir == "" {
		d, err := util.DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(d, "routes")
	}
	return &util.Cache{Dir: dir}, nil
}

// buildAll builds the plans, running up to the given number of workers
// at a time. Plans that can't be flown are reported in their results;
// the returned error is only non-nil if the context is canceled. If cache
// is non-nil, routes are looked up there before being built and stored
// after.
func buildAll(ctx context.Context, plans []route.Plan, workers int, cache *util.Cache, lg *log.Logger) ([]result, error) {
	results := make([]result, len(plans))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(workers, 1))
	for i, p := range plans {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = buildCached(p, cache, lg)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func buildCached(p route.Plan, cache *util.Cache, lg *log.Logger) result {
	var key string
	if cache != nil {
		var err error
		if key, err = util.HashObject(struct {
			Version int
			Plan    route.Plan
		}{route.ArchiveVersion, p}); err != nil {
			lg.Warnf("%s: %v", p.Name, err)
		} else {
			var r route.Route
			if _, err := cache.Retrieve(key, &r); err == nil && r.Validate() == nil {
				lg.Debug("cached route", slog.String("plan", p.Name), slog.String("key", key))
				return result{Plan: p, Route: r}
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				lg.Warnf("%s: %v", p.Name, err)
			}
		}
	}

	r, err := p.Build(lg)
	if err == nil && key != "" {
		if err := cache.Store(key, r); err != nil {
			lg.Warnf("%s: %v", p.Name, err)
		}
	}
	return result{Plan: p, Route: r, Err: err}
}

func writeOutput(results []result) error {
	f, _ := formatter(*format)
	opt := outputOptions{Subdivisions: *subdivisions, Sample: *sample}

	if *outFile == "" {
		bw := bufio.NewWriter(os.Stdout)
		if err := f(bw, results, opt); err != nil {
			return err
		}
		return bw.Flush()
	}

	fw, err := os.Create(*outFile)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(fw)
	if err := f(bw, results, opt); err != nil {
		fw.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		fw.Close()
		return err
	}
	return fw.Close()
}

// checkSampling returns an error if sampling any of the built routes at
// the given spacing would give an unreasonable number of points.
func checkSampling(results []result, interval float64) error {
	if interval == 0 {
		return nil
	}
	for _, r := range results {
		if r.Err == nil && r.Route.NumSamples(interval) == 0 {
			return fmt.Errorf("%s: -sample %g gives more than %d points", r.Plan.Name, interval, route.MaxSamples)
		}
	}
	return nil
}

type outputOptions struct {
	Subdivisions int
	Sample       float64
}

type outputFunc func(w io.Writer, results []result, opt outputOptions) error

func formatter(name string) (outputFunc, error) {
	switch name {
	case "text":
		return writeText, nil
	case "json":
		return writeJSON, nil
	case "msgpack":
		return writeArchive, nil
	case "svg":
		return writeSVG, nil
	default:
		return nil, fmt.Errorf("%s: unknown output format", name)
	}
}
