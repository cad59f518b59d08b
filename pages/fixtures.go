package pages

import (
	"time"

	"tourcab/models"
)

var seededAt = time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

func Fixtures() []models.Page {
	return []models.Page{
		{
			ID:         1,
			Title:      "Welcome to Aurangabad",
			Slug:       "welcome-to-aurangabad",
			Content:    "<h1>Explore the city of gates</h1><p>Cabs and guided tours to Ajanta, Ellora and beyond.</p>",
			Author:     "Admin",
			Status:     models.PagePublished,
			IsHomepage: true,
			CreatedAt:  seededAt,
			UpdatedAt:  seededAt,
		},
		{
			ID:        2,
			Title:     "About Us",
			Slug:      "about-us",
			Content:   "<p>A family-run cab service operating from Aurangabad since 2009.</p>",
			Author:    "Admin",
			Status:    models.PagePublished,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:        3,
			Title:     "Monsoon Specials",
			Slug:      "monsoon-specials",
			Content:   "<p>Waterfall routes around Mhaismal and Sahastrakund. Coming soon.</p>",
			Author:    "Admin",
			Status:    models.PageDraft,
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}
