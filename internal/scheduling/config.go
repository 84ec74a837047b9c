package scheduling

import (
	"fmt"
	"sort"
)

// Config business hours, slot grid and capacity per game type.
// Immutable after construction.
type Config struct {
	open       Clock
	close      Clock
	grid       *Grid
	capacities map[string]int
}

// NewConfig validates the input and builds the grid.
func NewConfig(open, close Clock, intervalMinutes int, capacities map[string]int) (*Config, error) {
	grid, err := NewGrid(open, close, intervalMinutes)
	if err != nil {
		return nil, err
	}

	caps := make(map[string]int, len(capacities))
	for gameType, capacity := range capacities {
		if capacity < 1 {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidCapacity, gameType, capacity)
		}
		caps[gameType] = capacity
	}

	return &Config{
		open:       open,
		close:      close,
		grid:       grid,
		capacities: caps,
	}, nil
}

func (c *Config) OpenTime() Clock  { return c.open }
func (c *Config) CloseTime() Clock { return c.close }
func (c *Config) Grid() *Grid      { return c.grid }

// Capacity returns the configured capacity of the game type.
// ok is false for unknown game types.
func (c *Config) Capacity(gameType string) (capacity int, ok bool) {
	capacity, ok = c.capacities[gameType]
	return capacity, ok
}

// IsKnownGameType reports whether the game type has a configured capacity.
func (c *Config) IsKnownGameType(gameType string) bool {
	_, ok := c.capacities[gameType]
	return ok
}

// GameTypes returns configured game types sorted by id.
func (c *Config) GameTypes() []string {
	out := make([]string, 0, len(c.capacities))
	for gameType := range c.capacities {
		out = append(out, gameType)
	}
	sort.Strings(out)
	return out
}
