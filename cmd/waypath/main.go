// Command waypath evaluates the waypoint search against fixture files, or
// solves cases read from stdin.
//
//	waypath -dir data/shearwater_challenge
//	printf '1\n50 50 20\n0\n' | waypath -stdin
//
// Settings come from flags, falling back to the environment (and .env):
// WAYPATH_FIXTURES, WAYPATH_SPEED, WAYPATH_DWELL, WAYPATH_WORKERS and
// DATABASE_URL. When DATABASE_URL is set every fixture run is recorded.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/katalvlaran/waypath/internal/config"
	"github.com/katalvlaran/waypath/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var opts runOptions
	flag.StringVar(&opts.Dir, "dir", cfg.FixturesDir, "directory holding sample_input*/sample_output* files")
	flag.Float64Var(&opts.Speed, "speed", cfg.Speed, "agent speed in distance units per second")
	flag.Float64Var(&opts.DwellTime, "dwell", cfg.DwellTime, "per-stop dwell time in seconds")
	flag.IntVar(&opts.Workers, "workers", cfg.Workers, "fixture files evaluated concurrently")
	flag.BoolVar(&opts.Stdin, "stdin", false, "read cases from stdin and print only the times")
	flag.BoolVar(&opts.ShowPath, "path", false, "print the chosen path for every case")
	flag.Parse()

	var recorder report.Recorder = report.NopRecorder{}
	if cfg.DatabaseURL != "" && !opts.Stdin {
		db, err := report.Open(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		rec := report.NewSQLRecorder(db)
		if err := rec.InitSchema(context.Background()); err != nil {
			log.Fatal(err)
		}
		recorder = rec
	}

	ok, err := run(context.Background(), opts, os.Stdin, os.Stdout, recorder)
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		os.Exit(1)
	}
}
