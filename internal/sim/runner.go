package sim

import (
	"github.com/charmbracelet/log"

	"sleepsim/internal/player"
)

// Trajectory holds per-day values of a detailed run, aligned by day
type Trajectory struct {
	Name       string
	Energy     []int
	Mood       []int
	Efficiency []float64
	Reports    []DayReport
}

// Days returns the number of simulated days
func (t Trajectory) Days() int {
	return len(t.Reports)
}

// Run steps p through the given number of days, mutating it in place.
// days <= 0 produces an empty trajectory. obs may be nil.
func Run(p *player.Player, days int, src Source, obs Observer) Trajectory {
	t := Trajectory{Name: p.Name}
	if days <= 0 {
		return t
	}

	t.Energy = make([]int, 0, days)
	t.Mood = make([]int, 0, days)
	t.Efficiency = make([]float64, 0, days)
	t.Reports = make([]DayReport, 0, days)

	for day := 1; day <= days; day++ {
		r := Step(p, src)
		t.Energy = append(t.Energy, r.Energy)
		t.Mood = append(t.Mood, r.Mood)
		t.Efficiency = append(t.Efficiency, r.WorkEfficiency)
		t.Reports = append(t.Reports, r)

		log.Debug("Simulated day", "player", p.Name, "day", day,
			"energy", r.Energy, "mood", r.Mood, "efficiency", r.WorkEfficiency, "sleep", r.SleepQuality)
		if obs != nil {
			obs(day, r)
		}
	}

	log.Info("Simulation finished", "player", p.Name, "days", days, "energy", p.Energy, "mood", p.Mood)
	return t
}
