package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"sleepsim/internal/player"
)

// StatsModel is a simple Bubble Tea model for displaying player stats
type StatsModel struct {
	Players []player.Player
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

func makeBar(value int) string {
	filled := max(0, min(value, player.MaxStat)) / 20
	return strings.Repeat("█", filled) + strings.Repeat("░", 5-filled)
}

// View implements tea.Model
func (m StatsModel) View() string {
	var s strings.Builder
	if len(m.Players) == 0 {
		s.WriteString("No players.\n")
	}
	for _, p := range m.Players {
		s.WriteString(fmt.Sprintf("%s %s\n", player.StatusEmoji(p), p.Name))
		s.WriteString(fmt.Sprintf("  Energy:       [%s] %3d%%\n", makeBar(p.Energy), p.Energy))
		s.WriteString(fmt.Sprintf("  Mood:         [%s] %3d%%\n", makeBar(p.Mood), p.Mood))
		s.WriteString(fmt.Sprintf("  Productivity: [%s] %3d%%\n", makeBar(p.Productivity), p.Productivity))
		s.WriteString(fmt.Sprintf("  %s\n\n", player.Summary(p.Mood)))
	}
	s.WriteString("Press ESC, click, or any key to close...")
	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(players []player.Player) error {
	program := tea.NewProgram(StatsModel{Players: players}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run stats display: %w", err)
	}
	return nil
}
