package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

type LocationType string

const (
	LocationHeritage LocationType = "heritage"
	LocationTemple   LocationType = "temple"
	LocationCity     LocationType = "city"
	LocationFort     LocationType = "fort"
	LocationCave     LocationType = "cave"
)

type LocationStatus string

const (
	LocationActive   LocationStatus = "active"
	LocationInactive LocationStatus = "inactive"
)

var (
	locationTypeRule   = validation.In(LocationHeritage, LocationTemple, LocationCity, LocationFort, LocationCave)
	locationStatusRule = validation.In(LocationActive, LocationInactive)
)

type Location struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Coordinates Coordinates    `json:"coordinates"`
	Address     string         `json:"address"`
	Type        LocationType   `json:"type"`
	Status      LocationStatus `json:"status"`
	Image       string         `json:"image"`
}

func (l Location) GetID() string { return l.ID }

func (l Location) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Coordinates),
		validation.Field(&l.Type, validation.Required, locationTypeRule),
		validation.Field(&l.Status, validation.Required, locationStatusRule),
	)
}

func (c Coordinates) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Lat, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&c.Lng, validation.Min(-180.0), validation.Max(180.0)),
	)
}

type LocationPatch struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Coordinates *Coordinates    `json:"coordinates,omitempty"`
	Address     *string         `json:"address,omitempty"`
	Type        *LocationType   `json:"type,omitempty"`
	Status      *LocationStatus `json:"status,omitempty"`
	Image       *string         `json:"image,omitempty"`
}

func (p LocationPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty),
		validation.Field(&p.Coordinates),
		validation.Field(&p.Type, validation.NilOrNotEmpty, locationTypeRule),
		validation.Field(&p.Status, validation.NilOrNotEmpty, locationStatusRule),
	)
}

func (p LocationPatch) Apply(l Location) Location {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Coordinates != nil {
		l.Coordinates = *p.Coordinates
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.Type != nil {
		l.Type = *p.Type
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
	if p.Image != nil {
		l.Image = *p.Image
	}
	return l
}
