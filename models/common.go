package models

// DateLayout is the calendar date format used by booking dates.
const DateLayout = "2006-01-02"

// Coordinates are always replaced whole by a patch.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
