package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sleepsim/internal/sim"
)

// Playback reveals simulated days stage by stage, one player after another
type Playback struct {
	Trajectories []sim.Trajectory
	Player       int // trajectory being revealed
	Day          int // 0-based day within the trajectory
	Stage        int // stages of the current day revealed so far
	Done         bool
	Selected     int // trajectory charted once playback is done
	ID           int
	Interval     time.Duration
}

type playbackTickMsg struct {
	id int
}

// NewPlayback starts playback. A zero interval reveals everything at once.
func NewPlayback(trajectories []sim.Trajectory, dayPause time.Duration, id int) Playback {
	pb := Playback{
		Trajectories: trajectories,
		Stage:        1,
		ID:           id,
		Interval:     StageFrameDuration(dayPause),
	}
	if dayPause <= 0 {
		pb.Skip()
	}
	pb.skipEmpty()
	return pb
}

func playbackTick(interval time.Duration, id int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return playbackTickMsg{id: id}
	})
}

// Tick returns the command that schedules the next reveal, or nil when done
func (pb Playback) Tick() tea.Cmd {
	if pb.Done {
		return nil
	}
	return playbackTick(pb.Interval, pb.ID)
}

// Advance reveals the next stage
func (pb *Playback) Advance() {
	if pb.Done {
		return
	}
	pb.Stage++
	if pb.Stage > StagesPerDay {
		pb.Stage = 1
		pb.Day++
	}
	if pb.Day >= pb.Trajectories[pb.Player].Days() {
		pb.Player++
		pb.Day = 0
		pb.Stage = 1
	}
	pb.skipEmpty()
}

// skipEmpty moves past trajectories with no days and marks the end
func (pb *Playback) skipEmpty() {
	for !pb.Done && pb.Player < len(pb.Trajectories) && pb.Trajectories[pb.Player].Days() == 0 {
		pb.Player++
	}
	if pb.Player >= len(pb.Trajectories) {
		pb.finish()
	}
}

// Skip reveals everything
func (pb *Playback) Skip() {
	pb.finish()
}

func (pb *Playback) finish() {
	pb.Done = true
	pb.Player = max(len(pb.Trajectories)-1, 0)
	if len(pb.Trajectories) > 0 {
		last := pb.Trajectories[pb.Player]
		pb.Day = max(last.Days()-1, 0)
	}
	pb.Stage = StagesPerDay
}

// Current returns the trajectory being revealed, if any
func (pb Playback) Current() (sim.Trajectory, bool) {
	if pb.Player < 0 || pb.Player >= len(pb.Trajectories) {
		return sim.Trajectory{}, false
	}
	return pb.Trajectories[pb.Player], true
}

// Lines returns the narration revealed so far for the current trajectory.
// Each day contributes its header plus one line per revealed stage.
func (pb Playback) Lines() []string {
	t, ok := pb.Current()
	if !ok || t.Days() == 0 {
		return nil
	}

	var lines []string
	for day := 0; day <= pb.Day && day < t.Days(); day++ {
		narration := sim.Narrate(t.Name, day+1, t.Reports[day])
		if day == pb.Day {
			narration = narration[:min(pb.Stage+1, len(narration))]
		}
		lines = append(lines, narration...)
		lines = append(lines, "")
	}
	return lines
}

// Cycle moves the chart selection by delta, wrapping around
func (pb *Playback) Cycle(delta int) {
	n := len(pb.Trajectories)
	if n == 0 {
		return
	}
	pb.Selected = ((pb.Selected+delta)%n + n) % n
}
