package categories

import (
	"time"

	"tourcab/models"
)

var seededAt = time.Date(2024, time.January, 5, 7, 0, 0, 0, time.UTC)

func parent(id string) *string { return &id }

func Fixtures() []models.Category {
	return []models.Category{
		{ID: "cat-heritage", Name: "Heritage Sites", Slug: "heritage-sites", Description: "World heritage caves and monuments", Type: models.CategoryLocation, Status: models.CategoryPublish, CreatedAt: seededAt},
		{ID: "cat-caves", Name: "Cave Temples", Slug: "cave-temples", Description: "Rock-cut caves of Ajanta and Ellora", Parent: parent("cat-heritage"), Type: models.CategoryLocation, Status: models.CategoryPublish, CreatedAt: seededAt},
		{ID: "cat-day-tours", Name: "Day Tours", Slug: "day-tours", Description: "Single-day guided trips", Type: models.CategoryTour, Status: models.CategoryPublish, CreatedAt: seededAt},
		{ID: "cat-pilgrimage", Name: "Pilgrimage Tours", Slug: "pilgrimage-tours", Description: "Jyotirlinga and Shirdi circuits", Parent: parent("cat-day-tours"), Type: models.CategoryTour, Status: models.CategoryDraft, CreatedAt: seededAt},
		{ID: "cat-sedan", Name: "Sedans", Slug: "sedans", Description: "Four-seat city cars", Type: models.CategoryCar, Status: models.CategoryPublish, CreatedAt: seededAt},
		{ID: "cat-suv", Name: "SUVs", Slug: "suvs", Description: "Six and seven seaters for families", Type: models.CategoryCar, Status: models.CategoryPublish, CreatedAt: seededAt},
	}
}
