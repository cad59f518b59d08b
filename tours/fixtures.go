package tours

import (
	"time"

	"tourcab/models"
)

var seededAt = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

// Fixtures is the default tour list written to an empty slot.
func Fixtures() []models.Tour {
	return []models.Tour{
		{
			ID:          "tour-ajanta",
			Title:       "Ajanta Caves Day Tour",
			Description: "Full-day guided visit to the Buddhist rock-cut caves of Ajanta with hotel pickup.",
			Price:       3500,
			Duration:    "10 hours",
			Location:    "Ajanta",
			Image:       "/static/uploads/tours/ajanta.jpg",
			Featured:    true,
			Rating:      4.8,
			ReviewCount: 214,
			CreatedAt:   seededAt,
		},
		{
			ID:          "tour-ellora",
			Title:       "Ellora Caves & Grishneshwar Temple",
			Description: "Half-day trip covering the Kailasa temple, Ellora caves and the Grishneshwar Jyotirlinga.",
			Price:       2200,
			Duration:    "6 hours",
			Location:    "Ellora",
			Image:       "/static/uploads/tours/ellora.jpg",
			Featured:    true,
			Rating:      4.7,
			ReviewCount: 188,
			CreatedAt:   seededAt,
		},
		{
			ID:          "tour-city",
			Title:       "Aurangabad City Heritage Tour",
			Description: "Bibi Ka Maqbara, Panchakki and the Aurangabad caves in one relaxed loop.",
			Price:       1500,
			Duration:    "5 hours",
			Location:    "Aurangabad",
			Image:       "/static/uploads/tours/city.jpg",
			Rating:      4.5,
			ReviewCount: 96,
			CreatedAt:   seededAt,
		},
		{
			ID:          "tour-daulatabad",
			Title:       "Daulatabad Fort Trek",
			Description: "Climb the hill fortress of Devagiri with a local guide, followed by lunch at Khuldabad.",
			Price:       1800,
			Duration:    "6 hours",
			Location:    "Daulatabad",
			Image:       "/static/uploads/tours/daulatabad.jpg",
			Rating:      4.6,
			ReviewCount: 72,
			CreatedAt:   seededAt,
		},
	}
}
