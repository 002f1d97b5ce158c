package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"sleepsim/internal/player"
)

// Batch defaults
const (
	DefaultBatchPlayers = 100
	DefaultBatchDays    = 100
)

// BatchConfig controls an unattended batch run
type BatchConfig struct {
	MaxDays int
	Seed    uint64
	Workers int // players simulated concurrently; results do not depend on it
}

// DefaultBatchConfig returns the 100 day, sequential configuration
func DefaultBatchConfig(seed uint64) BatchConfig {
	return BatchConfig{
		MaxDays: DefaultBatchDays,
		Seed:    seed,
		Workers: 1,
	}
}

// Outcome is the result of one player's batch run
type Outcome struct {
	Name         string
	SurvivedDays int
	Terminated   bool
	Final        player.Player
}

// BatchResult holds outcomes in roster order
type BatchResult struct {
	Seed     uint64
	MaxDays  int
	Outcomes []Outcome
}

// BatchStats summarises a batch
type BatchStats struct {
	Players    int
	Survivors  int
	Terminated int
	MeanDays   float64
	MinDays    int
	MaxDays    int
}

// Stats computes survival statistics over all outcomes
func (b BatchResult) Stats() BatchStats {
	s := BatchStats{Players: len(b.Outcomes)}
	if s.Players == 0 {
		return s
	}

	total := 0
	s.MinDays = b.Outcomes[0].SurvivedDays
	for _, o := range b.Outcomes {
		total += o.SurvivedDays
		s.MinDays = min(s.MinDays, o.SurvivedDays)
		s.MaxDays = max(s.MaxDays, o.SurvivedDays)
		if o.Terminated {
			s.Terminated++
		} else {
			s.Survivors++
		}
	}
	s.MeanDays = float64(total) / float64(s.Players)
	return s
}

// NewBatchRoster creates n default players named Player_1..Player_n
func NewBatchRoster(n int) []player.Player {
	players := make([]player.Player, 0, max(n, 0))
	for i := 1; i <= n; i++ {
		players = append(players, player.New(fmt.Sprintf("Player_%d", i)))
	}
	return players
}

// Survive runs p until it is exhausted or maxDays have passed.
// SurvivedDays is the day the run ended on.
func Survive(p player.Player, maxDays int, src Source) Outcome {
	o := Outcome{Name: p.Name, SurvivedDays: maxDays}
	for day := 1; day <= maxDays; day++ {
		Step(&p, src)
		if player.Exhausted(p) {
			o.SurvivedDays = day
			o.Terminated = true
			break
		}
	}
	o.Final = p
	return o
}

// RunBatch runs every player independently on its own stream derived from
// cfg.Seed and the player's position in the roster.
func RunBatch(ctx context.Context, players []player.Player, cfg BatchConfig) (BatchResult, error) {
	if cfg.MaxDays <= 0 {
		return BatchResult{}, errors.New("max days must be positive")
	}
	workers := max(cfg.Workers, 1)

	res := BatchResult{
		Seed:     cfg.Seed,
		MaxDays:  cfg.MaxDays,
		Outcomes: make([]Outcome, len(players)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range players {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Outcomes[i] = Survive(p, cfg.MaxDays, NewStream(cfg.Seed, i))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResult{}, fmt.Errorf("run batch: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return BatchResult{}, fmt.Errorf("run batch: %w", err)
	}

	stats := res.Stats()
	log.Info("Batch finished", "players", stats.Players, "days", cfg.MaxDays,
		"survivors", stats.Survivors, "mean_days", stats.MeanDays, "seed", cfg.Seed)
	return res, nil
}
