package engine

import (
	"errors"
	"fmt"
)

// Validation bounds for game configurations.
const (
	MinMapSize = 20
	MaxMapSize = 500
	MinCities  = 2
	MaxCities  = 50
	MaxPlayers = 8
)

var ErrInvalidGameConfig = errors.New("invalid game configuration")

// GameConfig represents a game-balance configuration loaded from JSON. It
// tunes world generation and the economy; all values are opaque to the core
// formulas except VictoryGold.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// World generation.
	MapSize       int `json:"map_size"`
	Cities        int `json:"cities"`
	SupplyPerCity int `json:"supply_per_city"`
	DemandPerCity int `json:"demand_per_city"`

	// Player setup.
	StartingGold  int `json:"starting_gold"`
	StartingRange int `json:"starting_range"`
	Opponents     int `json:"opponents"`

	// Economy.
	VictoryGold int `json:"victory_gold"`

	// Seed pins world generation; zero means time-seeded.
	Seed int64 `json:"seed,omitempty"`
}

// ValidateGameConfig checks a configuration for structural sanity.
func ValidateGameConfig(c *GameConfig) error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidGameConfig)
	}
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidGameConfig)
	}
	if c.MapSize < MinMapSize || c.MapSize > MaxMapSize {
		return fmt.Errorf("%w: map size %d outside [%d,%d]", ErrInvalidGameConfig, c.MapSize, MinMapSize, MaxMapSize)
	}
	if c.Cities < MinCities || c.Cities > MaxCities {
		return fmt.Errorf("%w: city count %d outside [%d,%d]", ErrInvalidGameConfig, c.Cities, MinCities, MaxCities)
	}
	if c.SupplyPerCity < 1 || c.DemandPerCity < 1 {
		return fmt.Errorf("%w: cities need at least one supplied and one demanded resource", ErrInvalidGameConfig)
	}
	if c.StartingGold <= 0 {
		return fmt.Errorf("%w: starting gold must be positive", ErrInvalidGameConfig)
	}
	if c.StartingRange <= 0 {
		return fmt.Errorf("%w: starting range must be positive", ErrInvalidGameConfig)
	}
	if c.Opponents < 0 || c.Opponents >= MaxPlayers {
		return fmt.Errorf("%w: opponent count %d outside [0,%d]", ErrInvalidGameConfig, c.Opponents, MaxPlayers-1)
	}
	if c.VictoryGold <= c.StartingGold {
		return fmt.Errorf("%w: victory gold must exceed starting gold", ErrInvalidGameConfig)
	}
	return nil
}
