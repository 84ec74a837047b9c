package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	caps := map[string]int{"vr": 2, "playstation": 4}

	cfg, err := NewConfig(mustClock(t, "10:00"), mustClock(t, "22:00"), 30, caps)
	require.NoError(t, err)

	caps["vr"] = 100

	capacity, ok := cfg.Capacity("vr")
	assert.True(t, ok)
	assert.Equal(t, 2, capacity)

	_, ok = cfg.Capacity("arcade")
	assert.False(t, ok)

	assert.Equal(t, []string{"playstation", "vr"}, cfg.GameTypes())
	assert.Equal(t, 24, cfg.Grid().Len())
}

func TestNewConfig_Errors(t *testing.T) {
	_, err := NewConfig(mustClock(t, "10:00"), mustClock(t, "22:00"), 30, map[string]int{"vr": 0})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	_, err = NewConfig(mustClock(t, "22:00"), mustClock(t, "10:00"), 30, nil)
	assert.ErrorIs(t, err, ErrInvalidBusinessHours)
}
