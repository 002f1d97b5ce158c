package player

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// RosterPath returns the roster file to use, falling back to the default name
func RosterPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return DefaultRosterFile
	}
	return path
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// RosterExists reports whether a roster file is present at path
func RosterExists(path string) bool {
	_, err := os.Stat(RosterPath(path))
	return err == nil
}

// LoadRoster reads an ordered list of players. A missing file is not an
// error: it yields an empty roster.
func LoadRoster(path string) ([]Player, error) {
	path = RosterPath(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("No save file found", "path", path)
		return []Player{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var players []Player
	if isYAML(path) {
		err = yaml.Unmarshal(data, &players)
	} else {
		err = json.Unmarshal(data, &players)
	}
	if err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}
	if players == nil {
		players = []Player{}
	}

	for i, p := range players {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("roster entry %d: %w", i, err)
		}
	}

	log.Info("Loaded roster", "path", path, "players", len(players))
	return players, nil
}

// SaveRoster writes players to path in list order
func SaveRoster(path string, players []Player) error {
	path = RosterPath(path)
	if players == nil {
		players = []Player{}
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(players)
	} else {
		data, err = json.MarshalIndent(players, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create roster directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write roster: %w", err)
	}

	log.Info("Player data saved", "path", path, "players", len(players))
	return nil
}
