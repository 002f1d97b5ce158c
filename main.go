package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"sleepsim/internal/config"
	"sleepsim/internal/ledger"
	"sleepsim/internal/player"
	"sleepsim/internal/sim"
	"sleepsim/internal/ui"
)

type options struct {
	stats  bool
	batch  bool
	save   bool
	days   int
	seed   uint64
	roster string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("sleepsim", flag.ContinueOnError)
	fs.BoolVar(&opts.stats, "stats", false, "show player stats and exit")
	fs.BoolVar(&opts.batch, "batch", false, "run the batch simulation without the interface")
	fs.IntVar(&opts.days, "days", 0, "simulate the roster for this many days without the interface")
	fs.BoolVar(&opts.save, "save", false, "save the roster after -days")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	fs.StringVar(&opts.roster, "roster", "", "roster file (.json, .yaml or .yml)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.days < 0 {
		return options{}, fmt.Errorf("days must not be negative, got %d", opts.days)
	}
	return opts, nil
}

// setupLogging installs the default logger. The interface owns the terminal,
// so it logs to the log file instead of stderr.
func setupLogging(cfg config.Config, headless bool) (func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	if !headless {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	log.SetDefault(log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "sleepsim",
	}))
	return closeLog, nil
}

func openLedger(ctx context.Context, path string) (ui.History, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}
	store, err := ledger.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Error("Closing ledger failed", "err", err)
		}
	}, nil
}

func simulateDays(w io.Writer, players []player.Player, days int, seed uint64) {
	for i := range players {
		name := players[i].Name
		traj := sim.Run(&players[i], days, sim.NewStream(seed, i), func(day int, r sim.DayReport) {
			for _, line := range sim.Narrate(name, day, r) {
				fmt.Fprintln(w, line)
			}
			fmt.Fprintln(w)
		})
		fmt.Fprintln(w, ui.RenderChart(traj, ui.DefaultChartWidth, ui.DefaultChartHeight))
		fmt.Fprintln(w)
	}
}

func runBatch(ctx context.Context, w io.Writer, cfg config.Config, seed uint64, history ui.History) error {
	res, err := sim.RunBatch(ctx, sim.NewBatchRoster(cfg.BatchPlayers), sim.BatchConfig{
		MaxDays: cfg.BatchDays,
		Seed:    seed,
		Workers: cfg.BatchWorkers,
	})
	if err != nil {
		return err
	}
	if err := sim.WriteBatchReport(w, res); err != nil {
		return err
	}
	fmt.Fprintf(w, "Seed: %d\n", seed)

	if history == nil {
		return nil
	}
	id, err := history.RecordBatch(ctx, res)
	if err != nil {
		return fmt.Errorf("record batch: %w", err)
	}
	fmt.Fprintf(w, "Recorded as run %s\n", id)
	return nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.roster != "" {
		cfg.RosterPath = opts.roster
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}

	closeLog, err := setupLogging(cfg, opts.batch || opts.days > 0)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = sim.NewSeed(); err != nil {
			return err
		}
	}
	log.Info("Starting", "seed", seed, "roster", cfg.RosterPath)

	ctx := context.Background()
	history, closeLedger, err := openLedger(ctx, cfg.LedgerPath)
	if err != nil {
		return err
	}
	defer closeLedger()

	if opts.batch {
		return runBatch(ctx, stdout, cfg, seed, history)
	}

	rosterPath := player.RosterPath(cfg.RosterPath)
	players, err := player.LoadRoster(rosterPath)
	if err != nil {
		return err
	}

	switch {
	case opts.days > 0:
		if len(players) == 0 {
			players = sim.NewBatchRoster(1)
		}
		simulateDays(stdout, players, opts.days, seed)
		if opts.save {
			return player.SaveRoster(rosterPath, players)
		}
		return nil
	case opts.stats:
		return ui.DisplayStats(players)
	}

	p := tea.NewProgram(ui.NewModel(cfg, players, history, seed), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
