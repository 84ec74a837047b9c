package calculate_price

type PriceCalculator interface {
	Calculate(gameType string, durationMinutes, numPeople int) (float64, error)
	Rate(gameType string) (float64, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
