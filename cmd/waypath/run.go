package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/waypath/fixture"
	"github.com/katalvlaran/waypath/internal/obs"
	"github.com/katalvlaran/waypath/internal/report"
	"github.com/katalvlaran/waypath/waypoint"
)

type runOptions struct {
	Dir       string
	Speed     float64
	DwellTime float64
	Workers   int
	Stdin     bool
	ShowPath  bool
}

func (o runOptions) searchOptions() []waypoint.Option {
	return []waypoint.Option{
		waypoint.WithSpeed(o.Speed),
		waypoint.WithDwellTime(o.DwellTime),
	}
}

// run executes one CLI invocation. It reports false when any fixture case
// fails; stdin mode always succeeds once parsing does.
func run(ctx context.Context, opts runOptions, stdin io.Reader, stdout io.Writer, rec report.Recorder) (bool, error) {
	if opts.Speed <= 0 {
		return false, fmt.Errorf("run: speed=%g: %w", opts.Speed, waypoint.ErrBadSpeed)
	}
	if opts.DwellTime < 0 {
		return false, fmt.Errorf("run: dwell=%g: %w", opts.DwellTime, waypoint.ErrBadDwellTime)
	}
	if opts.Stdin {
		return true, solveStdin(opts, stdin, stdout)
	}

	runID := strconv.FormatInt(time.Now().UnixNano(), 36)
	ctx = obs.WithRunID(ctx, runID)
	started := time.Now().UTC()

	files, err := loadFixtures(ctx, opts.Dir)
	if err != nil {
		return false, err
	}

	outcomes, err := evaluateAll(ctx, files, opts)
	if err != nil {
		return false, err
	}

	for i, f := range files {
		for _, o := range outcomes[i] {
			printOutcome(stdout, f, o, opts.ShowPath)
		}
	}

	summary, records := report.NewRun(runID, started, files, outcomes)
	if err := recordRun(ctx, rec, summary, records); err != nil {
		return false, err
	}
	fmt.Fprintf(stdout, "%d files, %d cases, %d passed, %d failed\n",
		summary.Fixtures, summary.Cases, summary.Passed, summary.Failed)

	return summary.Failed == 0, nil
}

func loadFixtures(ctx context.Context, dir string) (_ []fixture.File, err error) {
	defer obs.Time(ctx, "fixture.load")(&err)

	files, err := fixture.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		for i, c := range f.Cases {
			if err := waypoint.Validate(c.Waypoints); err != nil {
				return nil, fmt.Errorf("fixture %q case %d: %w", f.Path, i, err)
			}
		}
	}

	return files, nil
}

// evaluateAll runs the files on at most opts.Workers goroutines. Each file
// writes only its own slot of the result.
func evaluateAll(ctx context.Context, files []fixture.File, opts runOptions) (_ [][]fixture.Outcome, err error) {
	defer obs.Time(ctx, "fixture.evaluate")(&err)

	outcomes := make([][]fixture.Outcome, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = fixture.Evaluate(f, opts.searchOptions()...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func recordRun(ctx context.Context, rec report.Recorder, run report.Run, cases []report.CaseRecord) (err error) {
	defer obs.Time(ctx, "report.record")(&err)

	return rec.Record(ctx, run, cases)
}

func printOutcome(w io.Writer, f fixture.File, o fixture.Outcome, showPath bool) {
	result := "FAIL"
	if o.Pass {
		result = "PASS"
	}
	fmt.Fprintf(w, "For file %s: optimized lowest time: %.3f sec, expected: %.3f sec. Diff (sec): %.3f, %s\n",
		f.Path, o.Got, o.Expected, o.Diff, result)
	if showPath {
		printPath(w, f.Cases[o.Index].Waypoints, o.Path)
	}
}

func printPath(w io.Writer, wps []waypoint.Waypoint, path []int) {
	fmt.Fprint(w, " PATH:")
	for _, idx := range path {
		fmt.Fprintf(w, " (%d,%d)", wps[idx].X, wps[idx].Y)
	}
	fmt.Fprintln(w)
}

func solveStdin(opts runOptions, stdin io.Reader, stdout io.Writer) error {
	cases, err := fixture.ParseCases(stdin)
	if err != nil {
		return fmt.Errorf("run: parse stdin: %w", err)
	}
	for i, c := range cases {
		if err := waypoint.Validate(c.Waypoints); err != nil {
			return fmt.Errorf("run: case %d: %w", i, err)
		}
		res := waypoint.Search(c.Waypoints, opts.searchOptions()...)
		fmt.Fprintf(stdout, "%.3f\n", res.Time)
		if opts.ShowPath {
			printPath(stdout, c.Waypoints, res.Path)
		}
	}

	return nil
}
