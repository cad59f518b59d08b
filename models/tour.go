package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Tour struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration"`
	Location    string    `json:"location"`
	Image       string    `json:"image"`
	Featured    bool      `json:"featured"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t Tour) GetID() string { return t.ID }

func (t Tour) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&t.Description, validation.Required),
		validation.Field(&t.Price, validation.Min(0.0)),
		validation.Field(&t.Duration, validation.Required),
		validation.Field(&t.Location, validation.Required),
		validation.Field(&t.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&t.ReviewCount, validation.Min(0)),
	)
}

// TourPatch carries the fields of a partial update; nil fields are left alone.
type TourPatch struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Location    *string  `json:"location,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount *int     `json:"reviewCount,omitempty"`
}

func (p TourPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&p.Description, validation.NilOrNotEmpty),
		validation.Field(&p.Price, validation.Min(0.0)),
		validation.Field(&p.Duration, validation.NilOrNotEmpty),
		validation.Field(&p.Location, validation.NilOrNotEmpty),
		validation.Field(&p.Rating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&p.ReviewCount, validation.Min(0)),
	)
}

func (p TourPatch) Apply(t Tour) Tour {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Price != nil {
		t.Price = *p.Price
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Image != nil {
		t.Image = *p.Image
	}
	if p.Featured != nil {
		t.Featured = *p.Featured
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.ReviewCount != nil {
		t.ReviewCount = *p.ReviewCount
	}
	return t
}
