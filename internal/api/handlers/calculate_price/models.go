package calculate_price

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	GameType        string `json:"gameType"`
	DurationMinutes *int   `json:"durationMinutes,omitempty"`
	NumPeople       *int   `json:"numPeople,omitempty"`
}

// PriceResponse HTTP response model
type PriceResponse struct {
	GameType        string  `json:"gameType"`
	DurationMinutes int     `json:"durationMinutes"`
	NumPeople       int     `json:"numPeople"`
	RatePerHour     float64 `json:"ratePerHour"`
	Price           float64 `json:"price"`
}
