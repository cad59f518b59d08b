package blog

import (
	"time"

	"tourcab/models"
)

var (
	seededAt  = time.Date(2024, time.February, 1, 6, 30, 0, 0, time.UTC)
	published = time.Date(2024, time.February, 3, 6, 30, 0, 0, time.UTC)
)

func Fixtures() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:          1,
			Title:       "A First-Timer's Guide to Ajanta",
			Slug:        "a-first-timer-s-guide-to-ajanta",
			Excerpt:     "Which caves to see first and when to beat the crowds.",
			Content:     "## Start early\n\nThe gates open at **9 am**. Begin with Cave 1 for the Padmapani mural.\n\n- Carry water\n- Closed on Mondays",
			Category:    "Travel Guides",
			Image:       "/static/uploads/posts/ajanta-guide.jpg",
			Author:      "Admin",
			PublishedAt: &published,
			Status:      models.PostPublished,
			Tags:        []string{"ajanta", "caves", "unesco"},
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:          2,
			Title:       "Kailasa Temple: Carved From One Rock",
			Slug:        "kailasa-temple-carved-from-one-rock",
			Excerpt:     "How Cave 16 at Ellora was cut from the top down.",
			Content:     "Cave 16 is the largest monolithic excavation in the world.\n\n> Plan at least two hours here.",
			Category:    "History",
			Image:       "/static/uploads/posts/kailasa.jpg",
			Author:      "Admin",
			PublishedAt: &published,
			Status:      models.PostPublished,
			Tags:        []string{"ellora", "temples"},
			CreatedAt:   seededAt,
			UpdatedAt:   seededAt,
		},
		{
			ID:        3,
			Title:     "Monsoon Road Trips From Aurangabad",
			Slug:      "monsoon-road-trips-from-aurangabad",
			Excerpt:   "Waterfalls within a three-hour drive.",
			Content:   "Draft notes: Mhaismal, Sahastrakund, Gautala.",
			Category:  "Travel Guides",
			Author:    "Admin",
			Status:    models.PostDraft,
			Tags:      []string{"monsoon", "road-trip"},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
		{
			ID:        4,
			Title:     "2022 Fare Card",
			Slug:      "2022-fare-card",
			Excerpt:   "Old fares, kept for reference.",
			Content:   "Superseded by the current fare card.",
			Category:  "Announcements",
			Author:    "Admin",
			Status:    models.PostArchived,
			Tags:      []string{},
			CreatedAt: seededAt,
			UpdatedAt: seededAt,
		},
	}
}
