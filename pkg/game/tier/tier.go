// Package tier defines the fixed difficulty progression: per-tier generation
// parameters and the manager that walks the session through them.
package tier

import (
	"fmt"

	"goldmines/pkg/game/generator"
)

// Config holds the generation parameters of one difficulty tier
type Config struct {
	MinRooms       int
	MaxRooms       int
	MinRoomSize    int // Grid cells per side
	MaxRoomSize    int
	CorridorWidth  int
	MaxCoins       int // Coin budget for the whole level
	EnemySpawnRate int // Multiplies BaseEnemies
}

// BaseEnemies is the enemy count at spawn rate 1
const BaseEnemies = 5

// Enemies returns the maximum number of enemies spawned on a level of this tier
func (c Config) Enemies() int {
	return BaseEnemies * c.EnemySpawnRate
}

// Params returns the level generation parameters of this tier
func (c Config) Params() generator.Params {
	return generator.Params{
		MinRooms:      c.MinRooms,
		MaxRooms:      c.MaxRooms,
		MinRoomSize:   c.MinRoomSize,
		MaxRoomSize:   c.MaxRoomSize,
		CorridorWidth: c.CorridorWidth,
		MaxCoins:      c.MaxCoins,
	}
}

// Validate returns an error describing the first invalid parameter, or nil
func (c Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.EnemySpawnRate < 0 {
		return fmt.Errorf("enemy spawn rate must not be negative, got %d", c.EnemySpawnRate)
	}
	return nil
}

// Table is the full tier table. Row i configures tier i (0-based).
var Table = []Config{
	{MinRooms: 8, MaxRooms: 12, MinRoomSize: 8, MaxRoomSize: 12, CorridorWidth: 2, MaxCoins: 30, EnemySpawnRate: 2},
	{MinRooms: 12, MaxRooms: 16, MinRoomSize: 10, MaxRoomSize: 16, CorridorWidth: 3, MaxCoins: 40, EnemySpawnRate: 2},
	{MinRooms: 15, MaxRooms: 20, MinRoomSize: 12, MaxRoomSize: 20, CorridorWidth: 4, MaxCoins: 50, EnemySpawnRate: 2},
}

// TotalTiers is the number of tiers a session plays through
const TotalTiers = 2

// IsFinalTier returns true if the given tier (1-based) is the last one
func IsFinalTier(level int) bool {
	return level >= TotalTiers
}

// NextTier returns the next tier (1-based) after currentLevel, or 0 if currentLevel is final
func NextTier(currentLevel int) int {
	if currentLevel <= 0 || currentLevel >= TotalTiers {
		return 0
	}
	return currentLevel + 1
}
