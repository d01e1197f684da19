package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/core"
	"github.com/vovakirdan/tui-reactor/internal/games/reactor/levels"
	"github.com/vovakirdan/tui-reactor/internal/storage"
)

var (
	flagSimRuns     int
	flagSimParallel int
	flagSimTrace    bool
	flagSimSave     bool
	flagSimDiscards int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot campaigns headless",
	Long: `Play whole campaigns with the autopilot and no pacing delays.

Run i uses seed --seed + i, so a batch is reproducible. With --trace every
action of every run is printed in dispatch order.

Examples:
  reactor sim --seed 42
  reactor sim --runs 200 --parallel 8 --difficulty hard
  reactor sim --runs 1 --seed 7 --trace
  reactor sim --runs 50 --save`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simCmd.Flags().IntVar(&flagSimParallel, "parallel", 4, "Runs played at once")
	simCmd.Flags().BoolVar(&flagSimTrace, "trace", false, "Print the action trace of each run")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record runs in the run database")
	simCmd.Flags().IntVar(&flagSimDiscards, "discards", 1, "Discards the autopilot may make per turn")
}

// simOptions configures a batch of headless runs.
type simOptions struct {
	Config     config.ReactorConfig
	Levels     []levels.Level
	Difficulty config.DifficultyPreset
	Seed       int64
	Runs       int
	Parallel   int
	Trace      bool
	Pilot      reactor.Autopilot
	Logger     *log.Logger
}

// simRun is one finished run of a batch.
type simRun struct {
	Result reactor.Result
	Trace  *core.Trace
}

// simulate plays the batch. Runs share nothing, so each gets its own
// goroutine up to the parallel limit; results keep seed order.
func simulate(ctx context.Context, o simOptions) ([]simRun, error) {
	if o.Runs <= 0 {
		return nil, fmt.Errorf("runs must be positive, got %d", o.Runs)
	}
	if o.Parallel <= 0 {
		o.Parallel = 1
	}
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	runs := make([]simRun, o.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Parallel)

	for i := range runs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			opts := reactor.Options{
				Config:     o.Config,
				Levels:     o.Levels,
				Difficulty: o.Difficulty,
				Seed:       o.Seed + int64(i),
				Logger:     logger.With("run", i),
			}
			if o.Trace {
				opts.Trace = &core.Trace{}
			}
			res, err := reactor.Simulate(opts, o.Pilot)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, opts.Seed, err)
			}
			runs[i] = simRun{Result: res, Trace: opts.Trace}
			logger.Debug("run finished", "run", i, "seed", res.Seed, "outcome", res.Outcome(), "score", res.Score)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

func runSim(cmd *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	runs, err := simulate(cmd.Context(), simOptions{
		Config:     app.cfg,
		Levels:     app.levels,
		Difficulty: app.difficulty,
		Seed:       seed,
		Runs:       flagSimRuns,
		Parallel:   flagSimParallel,
		Trace:      flagSimTrace,
		Pilot:      reactor.Autopilot{MaxDiscards: flagSimDiscards},
		Logger:     app.logger,
	})
	if err != nil {
		return err
	}
	app.logger.Info("simulation done", "runs", len(runs), "elapsed", time.Since(start).Round(time.Millisecond))

	fmt.Printf("  %-20s  %-9s  %-8s  %-5s  %-7s  %s\n", "Seed", "Result", "Score", "Level", "Cleared", "Rounds")
	fmt.Printf("  %-20s  %-9s  %-8s  %-5s  %-7s  %s\n", "----", "------", "-----", "-----", "-------", "------")

	var victories, total int
	for _, r := range runs {
		res := r.Result
		fmt.Printf("  %-20d  %-9s  %-8d  %-5d  %-7d  %d\n",
			res.Seed, res.Outcome(), res.Score, res.LevelReached, res.Cleared, res.Rounds)
		if r.Trace != nil {
			fmt.Print(r.Trace.String())
		}
		if res.Victory {
			victories++
		}
		total += res.Score
	}

	fmt.Println()
	fmt.Printf("%d runs on %s: %d victories (%.0f%%), average score %.0f\n",
		len(runs), app.difficulty, victories,
		100*float64(victories)/float64(len(runs)), float64(total)/float64(len(runs)))

	if flagSimSave {
		return saveSimRuns(runs)
	}
	return nil
}

func saveSimRuns(runs []simRun) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range runs {
		res := r.Result
		_, err := store.SaveRun(storage.RunRecord{
			Difficulty:   res.Difficulty,
			Seed:         res.Seed,
			Score:        res.Score,
			LevelReached: res.LevelReached,
			Cleared:      res.Cleared,
			Rounds:       res.Rounds,
			Outcome:      res.Outcome(),
		})
		if err != nil {
			return err
		}
	}
	app.logger.Info("runs saved", "count", len(runs), "db", flagDBPath)
	return nil
}
