package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"sleepsim/internal/player"
	"sleepsim/internal/sim"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	header  lipgloss.Style
	border  lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	stats: lipgloss.NewStyle().
		Padding(0, 1),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	border: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#808080")),
}

// playbackLines is how much narration stays on screen during playback
const playbackLines = 18

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Goodbye!\n"
	}

	var body string
	switch m.Mode {
	case ModeSetupCount, ModeSetupName, ModeUpdate, ModeDays:
		body = m.renderPrompt()
	case ModeStats:
		body = m.renderStatsScreen()
	case ModePlayback:
		body = m.renderPlayback()
	case ModeBatch:
		body = m.renderBatch()
	case ModeHistory:
		body = m.renderHistory()
	default:
		body = m.renderMenu()
	}

	sections := []string{gameStyles.title.Render("😴 Sleep Deprivation Simulator 😴"), "", body}
	if m.Message != "" && TimeNow().Before(m.MessageExpires) {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, choice := range menuChoices {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %d. %s", cursor, i+1, choice))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.menuBox.Render(gameStyles.menu.Render(strings.Join(menuItems, "\n"))),
		"",
		gameStyles.status.Render("Press 1-8 or use arrows and enter • q to quit"),
	)
}

func (m Model) renderPrompt() string {
	help := "enter to confirm • esc to cancel"
	if m.Mode == ModeSetupCount || m.Mode == ModeSetupName {
		help = "enter to confirm"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.PromptLabel(),
		gameStyles.menuBox.Render(m.Input.View()),
		"",
		gameStyles.status.Render(help),
	)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(gameStyles.border).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return gameStyles.header
			}
			return gameStyles.stats
		})
}

// RenderRoster lists every player's attributes with a status emoji
func RenderRoster(players []player.Player) string {
	if len(players) == 0 {
		return "No players."
	}
	var rows [][]string
	for _, p := range players {
		rows = append(rows, []string{
			player.StatusEmoji(p) + " " + p.Name,
			fmt.Sprintf("%d%%", p.Energy),
			fmt.Sprintf("%d%%", p.Mood),
			fmt.Sprintf("%d%%", p.Productivity),
			player.Summary(p.Mood),
		})
	}
	return newTable("Player", "Energy", "Mood", "Productivity", "Outlook").Rows(rows...).Render()
}

func (m Model) renderStatsScreen() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderRoster(m.Players),
		"",
		gameStyles.status.Render("enter or esc to go back"),
	)
}

func (m Model) renderPlayback() string {
	pb := m.Playback
	t, ok := pb.Current()
	if !ok {
		return lipgloss.JoinVertical(lipgloss.Left,
			"Nobody to simulate.",
			"",
			gameStyles.status.Render("enter or esc to go back"),
		)
	}

	if pb.Done {
		t = pb.Trajectories[pb.Selected]
		sections := []string{RenderChart(t, DefaultChartWidth, DefaultChartHeight), ""}
		if days := t.Days(); days > 0 {
			last := t.Reports[days-1]
			sections = append(sections,
				fmt.Sprintf("Day %d: %s", days, DayStrip(last, StagesPerDay)),
				"",
			)
		}
		help := "enter or esc to go back"
		if len(pb.Trajectories) > 1 {
			help = fmt.Sprintf("player %d of %d • ←/→ to switch • %s", pb.Selected+1, len(pb.Trajectories), help)
		}
		sections = append(sections, gameStyles.status.Render(help))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	lines := pb.Lines()
	if len(lines) > playbackLines {
		lines = lines[len(lines)-playbackLines:]
	}
	strip := ""
	if pb.Day < t.Days() {
		strip = DayStrip(t.Reports[pb.Day], pb.Stage)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render(fmt.Sprintf("%s • day %d of %d", t.Name, pb.Day+1, t.Days())),
		gameStyles.menuBox.Render(strip),
		"",
		strings.Join(lines, "\n"),
		"",
		gameStyles.status.Render("space to skip • q to quit"),
	)
}

// RenderBatch summarises a batch run as a table of terminated players
func RenderBatch(res sim.BatchResult) string {
	stats := res.Stats()
	summary := fmt.Sprintf("%d of %d players lasted all %d days. Average survival: %.1f days (min %d, max %d).",
		stats.Survivors, stats.Players, res.MaxDays, stats.MeanDays, stats.MinDays, stats.MaxDays)

	var rows [][]string
	for _, o := range res.Outcomes {
		if !o.Terminated {
			continue
		}
		rows = append(rows, []string{
			o.Name,
			fmt.Sprintf("%d", o.SurvivedDays),
			fmt.Sprintf("%d%%", o.Final.Energy),
			fmt.Sprintf("%d%%", o.Final.Mood),
			fmt.Sprintf("%d%%", o.Final.Productivity),
		})
	}
	if len(rows) == 0 {
		return summary
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		newTable("Out of the game", "Days", "Energy", "Mood", "Productivity").Rows(rows...).Render(),
		"",
		summary,
	)
}

func (m Model) renderBatch() string {
	if m.BatchRunning {
		return fmt.Sprintf("Simulating %d players for %d days...", m.Config.BatchPlayers, m.Config.BatchDays)
	}
	if m.Batch == nil {
		return "No batch results."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderBatch(*m.Batch),
		"",
		gameStyles.status.Render("enter or esc to go back"),
	)
}

func (m Model) renderHistory() string {
	body := "No batch runs recorded yet."
	if len(m.Runs) > 0 {
		var rows [][]string
		for _, r := range m.Runs {
			rows = append(rows, []string{
				r.CreatedAt.Local().Format("2006-01-02 15:04"),
				fmt.Sprintf("%d", r.Players),
				fmt.Sprintf("%d", r.MaxDays),
				fmt.Sprintf("%d", r.Survivors),
				fmt.Sprintf("%.1f", r.MeanDays),
				fmt.Sprintf("%d", r.Seed),
			})
		}
		body = newTable("When", "Players", "Days", "Survivors", "Mean days", "Seed").Rows(rows...).Render()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		body,
		"",
		gameStyles.status.Render("enter or esc to go back"),
	)
}
