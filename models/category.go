package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CategoryType string

const (
	CategoryLocation CategoryType = "location"
	CategoryTour     CategoryType = "tour"
	CategoryCar      CategoryType = "car"
)

type CategoryStatus string

const (
	CategoryPublish CategoryStatus = "publish"
	CategoryDraft   CategoryStatus = "draft"
)

var (
	categoryTypeRule   = validation.In(CategoryLocation, CategoryTour, CategoryCar)
	categoryStatusRule = validation.In(CategoryPublish, CategoryDraft)
)

// Category.Parent is an advisory reference to another category id.
type Category struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Parent      *string        `json:"parent"`
	Type        CategoryType   `json:"type"`
	Status      CategoryStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (c Category) GetID() string { return c.ID }

func (c Category) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&c.Type, validation.Required, categoryTypeRule),
		validation.Field(&c.Status, validation.Required, categoryStatusRule),
	)
}

// CategoryPatch sets Parent when non-nil; ClearParent unsets it.
type CategoryPatch struct {
	Name        *string         `json:"name,omitempty"`
	Slug        *string         `json:"slug,omitempty"`
	Description *string         `json:"description,omitempty"`
	Parent      *string         `json:"parent,omitempty"`
	ClearParent bool            `json:"clearParent,omitempty"`
	Type        *CategoryType   `json:"type,omitempty"`
	Status      *CategoryStatus `json:"status,omitempty"`
}

func (p CategoryPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&p.Type, validation.NilOrNotEmpty, categoryTypeRule),
		validation.Field(&p.Status, validation.NilOrNotEmpty, categoryStatusRule),
	)
}

func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Parent != nil {
		parent := *p.Parent
		c.Parent = &parent
	}
	if p.ClearParent {
		c.Parent = nil
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	return c
}
