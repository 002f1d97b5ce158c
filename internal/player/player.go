package player

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned when an attribute update falls outside [MinStat, MaxStat].
	ErrOutOfRange = errors.New("value out of range")
	// ErrNameRequired is returned for players without a name.
	ErrNameRequired = errors.New("player name is required")
)

// Player represents one simulated person's attributes
type Player struct {
	Name         string `json:"name" yaml:"name"`
	Energy       int    `json:"energy" yaml:"energy"`
	Mood         int    `json:"mood" yaml:"mood"`
	Productivity int    `json:"productivity" yaml:"productivity"`
}

// New creates a player with default attributes
func New(name string) Player {
	return Player{
		Name:         name,
		Energy:       DefaultEnergy,
		Mood:         DefaultMood,
		Productivity: DefaultProductivity,
	}
}

// Clamp bounds v to [MinStat, MaxStat]
func Clamp(v int) int {
	return max(MinStat, min(v, MaxStat))
}

// ClampStats bounds energy and mood. Productivity is a baseline skill and is left alone.
func (p *Player) ClampStats() {
	p.Energy = Clamp(p.Energy)
	p.Mood = Clamp(p.Mood)
}

// Set overwrites all three attributes after checking each is within range.
// On error the player is unchanged.
func (p *Player) Set(energy, mood, productivity int) error {
	checks := []struct {
		name  string
		value int
	}{
		{"energy", energy},
		{"mood", mood},
		{"productivity", productivity},
	}
	for _, c := range checks {
		if err := ValidateStat(c.name, c.value); err != nil {
			return err
		}
	}

	p.Energy = energy
	p.Mood = mood
	p.Productivity = productivity
	return nil
}

// Validate checks fields that must be present on a stored player
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

func (p Player) String() string {
	return fmt.Sprintf("Name: %s, Energy: %d%%, Mood: %d%%, Productivity: %d%%",
		p.Name, p.Energy, p.Mood, p.Productivity)
}

// ValidateStat checks a single attribute value against [MinStat, MaxStat]
func ValidateStat(name string, v int) error {
	if v < MinStat || v > MaxStat {
		return fmt.Errorf("%s %d: %w (%d-%d)", name, v, ErrOutOfRange, MinStat, MaxStat)
	}
	return nil
}
