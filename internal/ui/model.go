package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"sleepsim/internal/config"
	"sleepsim/internal/ledger"
	"sleepsim/internal/player"
	"sleepsim/internal/sim"
)

// Testable clock
var TimeNow = time.Now

// History records and lists batch runs
type History interface {
	RecordBatch(ctx context.Context, res sim.BatchResult) (string, error)
	RecentRuns(ctx context.Context, limit int) ([]ledger.RunSummary, error)
}

// Mode is the screen the model is showing
type Mode int

const (
	ModeMenu Mode = iota
	ModeSetupCount
	ModeSetupName
	ModeUpdate
	ModeDays
	ModeStats
	ModePlayback
	ModeBatch
	ModeHistory
)

// Menu entries, selectable by number or cursor
const (
	MenuStats = iota
	MenuUpdate
	MenuSimulate
	MenuSave
	MenuLoad
	MenuBatch
	MenuHistory
	MenuExit
)

var menuChoices = []string{
	"Display Player Stats",
	"Update Player Attributes",
	"Simulate Sleep Deprivation",
	"Save Player Data",
	"Load Player Data",
	"Simulate 100 Players for 100 Days",
	"Batch History",
	"Exit",
}

var updateFields = []string{"energy", "mood", "productivity"}

const historyLimit = 10

// Model represents the simulator state
type Model struct {
	Players        []player.Player
	Config         config.Config
	Mode           Mode
	Choice         int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Input          textinput.Model
	Playback       Playback
	Batch          *sim.BatchResult
	BatchRunning   bool
	Runs           []ledger.RunSummary

	history     History
	seeds       *rand.Rand
	setupTotal  int
	setupDone   int
	updateIndex int
	updateField int
	pending     [3]int
	playbacks   int
}

type batchDoneMsg struct {
	result sim.BatchResult
	runID  string
	err    error
}

type historyMsg struct {
	runs []ledger.RunSummary
	err  error
}

// NewModel creates the model for a loaded roster. An empty roster starts
// with the new player prompts. history may be nil.
func NewModel(cfg config.Config, players []player.Player, history History, seed uint64) Model {
	input := textinput.New()
	input.CharLimit = 32
	input.Width = 32

	m := Model{
		Players: players,
		Config:  cfg,
		Input:   input,
		history: history,
		seeds:   sim.NewStream(seed, 0),
	}
	if len(players) == 0 {
		m.startSetup()
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.Mode != ModeMenu {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Mode {
		case ModeMenu:
			return m.updateMenu(msg)
		case ModeSetupCount, ModeSetupName, ModeUpdate, ModeDays:
			return m.updatePrompt(msg)
		case ModePlayback:
			return m.updatePlayback(msg)
		case ModeStats, ModeBatch, ModeHistory:
			if m.BatchRunning {
				return m, nil
			}
			switch msg.String() {
			case "q":
				m.Quitting = true
				return m, tea.Quit
			case "esc", "enter", " ", "b":
				m.Mode = ModeMenu
			}
			return m, nil
		}

	case playbackTickMsg:
		if m.Mode != ModePlayback || msg.id != m.Playback.ID {
			return m, nil
		}
		m.Playback.Advance()
		return m, m.Playback.Tick()

	case batchDoneMsg:
		m.BatchRunning = false
		if msg.err != nil {
			log.Error("Batch failed", "err", msg.err)
			m.setMessage("Batch failed: " + msg.err.Error())
			m.Mode = ModeMenu
			return m, nil
		}
		m.Batch = &msg.result
		if msg.runID != "" {
			m.setMessage("Batch recorded as " + msg.runID)
		}
		return m, nil

	case historyMsg:
		if msg.err != nil {
			log.Error("Loading batch history failed", "err", msg.err)
			m.setMessage("Could not load history: " + msg.err.Error())
			m.Mode = ModeMenu
			return m, nil
		}
		m.Runs = msg.runs
		return m, nil
	}

	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(menuChoices)-1 {
			m.Choice++
		}
	case "enter", " ":
		return m.selectMenu(m.Choice)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(menuChoices) {
			m.Choice = n - 1
			return m.selectMenu(m.Choice)
		}
		m.setMessage("Invalid choice. Please try again.")
	}
	return m, nil
}

func (m Model) selectMenu(choice int) (tea.Model, tea.Cmd) {
	switch choice {
	case MenuStats:
		m.Mode = ModeStats
	case MenuUpdate:
		if len(m.Players) == 0 {
			m.setMessage("There are no players to update.")
			return m, nil
		}
		m.updateIndex, m.updateField = 0, 0
		m.prompt(ModeUpdate, "")
		return m, textinput.Blink
	case MenuSimulate:
		m.prompt(ModeDays, "")
		return m, textinput.Blink
	case MenuSave:
		m.save()
	case MenuLoad:
		if m.load() {
			return m, textinput.Blink
		}
	case MenuBatch:
		return m, m.startBatch()
	case MenuHistory:
		m.Mode = ModeHistory
		m.Runs = nil
		return m, m.loadHistory()
	case MenuExit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = TimeNow().Add(3 * time.Second)
}

func (m *Model) prompt(mode Mode, value string) {
	m.Mode = mode
	m.Input.SetValue(value)
	m.Input.Placeholder = ""
	m.Input.Focus()
}

func (m *Model) startSetup() {
	m.Players = []player.Player{}
	m.setupTotal, m.setupDone = 0, 0
	m.prompt(ModeSetupCount, "")
}

// PromptLabel describes what the current prompt is asking for
func (m Model) PromptLabel() string {
	switch m.Mode {
	case ModeSetupCount:
		return "Enter the number of players:"
	case ModeSetupName:
		return fmt.Sprintf("Enter the name of player %d of %d:", m.setupDone+1, m.setupTotal)
	case ModeUpdate:
		p := m.Players[m.updateIndex]
		field := updateFields[m.updateField]
		current := []int{p.Energy, p.Mood, p.Productivity}[m.updateField]
		return fmt.Sprintf("Enter new %s level for %s (current: %d%%):", field, p.Name, current)
	case ModeDays:
		return "Enter the number of days to simulate:"
	default:
		return ""
	}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// setup cannot be abandoned: there would be nobody to simulate
		if m.Mode == ModeSetupCount || m.Mode == ModeSetupName {
			return m, nil
		}
		m.Input.Blur()
		m.Mode = ModeMenu
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.Input.Value())
		m.Input.SetValue("")
		return m.submit(value)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func parsePositive(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%q is not a positive whole number", value)
	}
	return n, nil
}

func (m Model) submit(value string) (tea.Model, tea.Cmd) {
	switch m.Mode {
	case ModeSetupCount:
		n, err := parsePositive(value)
		if err != nil {
			m.setMessage(err.Error())
			return m, nil
		}
		m.setupTotal = n
		m.prompt(ModeSetupName, "")

	case ModeSetupName:
		name := value
		if name == "" {
			name = fmt.Sprintf("Player_%d", m.setupDone+1)
		}
		m.Players = append(m.Players, player.New(name))
		m.setupDone++
		log.Info("Created player", "name", name)
		if m.setupDone >= m.setupTotal {
			m.Input.Blur()
			m.Mode = ModeMenu
			m.setMessage(fmt.Sprintf("Created %d players", len(m.Players)))
		}

	case ModeUpdate:
		if len(m.Players) == 0 {
			m.Mode = ModeMenu
			return m, nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			m.setMessage(fmt.Sprintf("%q is not a whole number", value))
			return m, nil
		}
		if err := player.ValidateStat(updateFields[m.updateField], n); err != nil {
			m.setMessage(err.Error())
			return m, nil
		}
		m.pending[m.updateField] = n
		m.updateField++
		if m.updateField < len(updateFields) {
			return m, nil
		}

		p := &m.Players[m.updateIndex]
		if err := p.Set(m.pending[0], m.pending[1], m.pending[2]); err != nil {
			m.setMessage(err.Error())
			m.updateField = 0
			return m, nil
		}
		log.Info("Updated player", "name", p.Name, "energy", p.Energy, "mood", p.Mood, "productivity", p.Productivity)
		m.updateField = 0
		m.updateIndex++
		if m.updateIndex >= len(m.Players) {
			m.Input.Blur()
			m.Mode = ModeMenu
			m.setMessage("Attributes updated")
		}

	case ModeDays:
		days, err := parsePositive(value)
		if err != nil {
			m.setMessage(err.Error())
			return m, nil
		}
		m.Input.Blur()
		return m, m.simulate(days)
	}
	return m, nil
}

// simulate runs every player for the given days on fresh streams and
// starts playback of the results
func (m *Model) simulate(days int) tea.Cmd {
	runSeed := m.seeds.Uint64()
	trajectories := make([]sim.Trajectory, 0, len(m.Players))
	for i := range m.Players {
		trajectories = append(trajectories, sim.Run(&m.Players[i], days, sim.NewStream(runSeed, i), nil))
	}
	log.Info("Simulated roster", "players", len(m.Players), "days", days, "seed", runSeed)

	m.playbacks++
	m.Playback = NewPlayback(trajectories, m.Config.DayPause, m.playbacks)
	m.Mode = ModePlayback
	return m.Playback.Tick()
}

func (m Model) updatePlayback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case " ", "s":
		m.Playback.Skip()
	case "left", "h":
		if m.Playback.Done {
			m.Playback.Cycle(-1)
		}
	case "right", "l", "tab":
		if m.Playback.Done {
			m.Playback.Cycle(1)
		}
	case "esc", "enter", "b":
		if m.Playback.Done {
			m.Mode = ModeMenu
		}
	}
	return m, nil
}

func (m *Model) save() {
	path := player.RosterPath(m.Config.RosterPath)
	if err := player.SaveRoster(path, m.Players); err != nil {
		log.Error("Saving roster failed", "err", err)
		m.setMessage("Save failed: " + err.Error())
		return
	}
	m.setMessage("Player data saved to " + path)
}

// load replaces the roster from disk. It reports whether the new player
// prompts were started because there was nothing to load.
func (m *Model) load() bool {
	path := player.RosterPath(m.Config.RosterPath)
	players, err := player.LoadRoster(path)
	if err != nil {
		log.Error("Loading roster failed", "err", err)
		m.setMessage("Load failed: " + err.Error())
		return false
	}
	if len(players) == 0 {
		m.startSetup()
		if player.RosterExists(path) {
			m.setMessage("No players found in " + path + ".")
		} else {
			m.setMessage("No save file found with the name " + path + ".")
		}
		return true
	}
	m.Players = players
	m.setMessage(fmt.Sprintf("Loaded %d players from %s", len(players), path))
	return false
}

func (m *Model) startBatch() tea.Cmd {
	m.Mode = ModeBatch
	m.Batch = nil
	m.BatchRunning = true

	cfg := sim.BatchConfig{
		MaxDays: m.Config.BatchDays,
		Seed:    m.seeds.Uint64(),
		Workers: m.Config.BatchWorkers,
	}
	players := sim.NewBatchRoster(m.Config.BatchPlayers)
	history := m.history

	return func() tea.Msg {
		ctx := context.Background()
		res, err := sim.RunBatch(ctx, players, cfg)
		if err != nil {
			return batchDoneMsg{err: err}
		}
		var runID string
		if history != nil {
			if runID, err = history.RecordBatch(ctx, res); err != nil {
				log.Error("Recording batch failed", "err", err)
			}
		}
		return batchDoneMsg{result: res, runID: runID}
	}
}

func (m Model) loadHistory() tea.Cmd {
	history := m.history
	return func() tea.Msg {
		if history == nil {
			return historyMsg{}
		}
		runs, err := history.RecentRuns(context.Background(), historyLimit)
		return historyMsg{runs: runs, err: err}
	}
}
