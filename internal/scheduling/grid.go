package scheduling

import "fmt"

// Grid ordered slots of a business day.
// Built once from the lounge configuration and shared read-only.
type Grid struct {
	slots    []SlotLabel
	starts   []Clock
	index    map[SlotLabel]int
	interval int
}

// GenerateSlots returns the slot labels from open to close.
// A slot is kept only if it ends at or before close, a trailing partial slot is dropped.
func GenerateSlots(open, close Clock, intervalMinutes int) ([]SlotLabel, error) {
	grid, err := NewGrid(open, close, intervalMinutes)
	if err != nil {
		return nil, err
	}
	return grid.Slots(), nil
}

// NewGrid builds the slot grid for the given business hours.
func NewGrid(open, close Clock, intervalMinutes int) (*Grid, error) {
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, intervalMinutes)
	}
	if open < 0 || close > minutesPerDay || open >= close {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidBusinessHours, open, close)
	}

	count := int(close-open) / intervalMinutes
	grid := &Grid{
		slots:    make([]SlotLabel, 0, count),
		starts:   make([]Clock, 0, count),
		index:    make(map[SlotLabel]int, count),
		interval: intervalMinutes,
	}

	for start := open; start.Add(intervalMinutes) <= close; start = start.Add(intervalMinutes) {
		label := start.Label()
		grid.index[label] = len(grid.slots)
		grid.slots = append(grid.slots, label)
		grid.starts = append(grid.starts, start)
	}

	return grid, nil
}

// Slots returns a copy of the slot labels in ascending order.
func (g *Grid) Slots() []SlotLabel {
	out := make([]SlotLabel, len(g.slots))
	copy(out, g.slots)
	return out
}

// Len number of slots in the day
func (g *Grid) Len() int {
	return len(g.slots)
}

// Interval slot length in minutes
func (g *Grid) Interval() int {
	return g.interval
}

// IndexOf returns the position of the label in the grid.
func (g *Grid) IndexOf(label SlotLabel) (int, bool) {
	i, ok := g.index[label]
	return i, ok
}

// Contains reports whether the label is a slot of the grid.
func (g *Grid) Contains(label SlotLabel) bool {
	_, ok := g.index[label]
	return ok
}

// Start returns the clock of the slot at position i.
func (g *Grid) Start(i int) Clock {
	return g.starts[i]
}

// At returns the label of the slot at position i.
func (g *Grid) At(i int) SlotLabel {
	return g.slots[i]
}
