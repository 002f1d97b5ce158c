package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRoundTrip(t *testing.T) {
	players := []Player{
		New("Player_1"),
		{Name: "Night Owl", Energy: 12, Mood: 88, Productivity: 40},
		{Name: "Overachiever", Energy: 0, Mood: 100, Productivity: 140},
	}

	for _, name := range []string{"players.json", "players.yaml", "players.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveRoster(path, players))

			loaded, err := LoadRoster(path)
			require.NoError(t, err)
			assert.Equal(t, players, loaded)
		})
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	players, err := LoadRoster(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.NotNil(t, players)
	assert.Empty(t, players)
}

func TestRosterExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	assert.False(t, RosterExists(path))

	require.NoError(t, SaveRoster(path, nil))
	assert.True(t, RosterExists(path))

	players, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestLoadRosterFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player_data.json")
	legacy := `[{"name": "Ada", "energy": 64, "mood": 31, "productivity": 70}]`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0644))

	players, err := LoadRoster(path)
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, Player{Name: "Ada", Energy: 64, Mood: 31, Productivity: 70}, players[0])
}

func TestLoadRosterErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed JSON", `[{"name": `},
		{"Missing name", `[{"energy": 10, "mood": 10, "productivity": 10}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := LoadRoster(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveRosterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "empty.json")
	require.NoError(t, SaveRoster(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	players, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestRosterPath(t *testing.T) {
	assert.Equal(t, DefaultRosterFile, RosterPath(""))
	assert.Equal(t, "x.yaml", RosterPath("x.yaml"))
}
