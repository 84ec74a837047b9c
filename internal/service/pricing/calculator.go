package pricing

import (
	"fmt"
	"math"
)

// Calculator prices bookings from the hourly rate of each game type
type Calculator struct {
	rates map[string]float64
}

// NewCalculator copies the rate table
func NewCalculator(rates map[string]float64) *Calculator {
	copied := make(map[string]float64, len(rates))
	for gameType, rate := range rates {
		copied[gameType] = rate
	}
	return &Calculator{rates: copied}
}

// Calculate returns rate * hours * people rounded to 2 decimals
func (c *Calculator) Calculate(gameType string, durationMinutes, numPeople int) (float64, error) {
	rate, ok := c.rates[gameType]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownGameType, gameType)
	}
	if durationMinutes <= 0 {
		return 0, ErrInvalidDuration
	}
	if numPeople < 1 {
		return 0, ErrInvalidNumPeople
	}

	price := rate * float64(durationMinutes) / 60 * float64(numPeople)
	return math.Round(price*100) / 100, nil
}

// Rate returns the hourly rate of the game type
func (c *Calculator) Rate(gameType string) (float64, bool) {
	rate, ok := c.rates[gameType]
	return rate, ok
}
