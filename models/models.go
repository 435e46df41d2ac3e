package models

// Plant timestamps are stored and returned as strings; all watering-date
// math happens on the client.
type Plant struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	PhotoURL     string  `json:"photo_url"`
	LastWatering string  `json:"last_watering"`
	NextWatering string  `json:"next_watering"`
	LightLevel   float64 `json:"light_level"`
}
