package models

// Occasion is a calendar event pinned to a single day
type Occasion struct {
	ID    string `json:"id"`
	Date  string `json:"date"` // YYYY-MM-DD format
	Title string `json:"title"`
	Color string `json:"color"` // hex color token, e.g. "#3b82f6"
}
