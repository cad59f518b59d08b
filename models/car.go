package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

type Transmission string

const (
	TransmissionAutomatic Transmission = "automatic"
	TransmissionManual    Transmission = "manual"
)

type Fuel string

const (
	FuelPetrol   Fuel = "petrol"
	FuelDiesel   Fuel = "diesel"
	FuelElectric Fuel = "electric"
	FuelHybrid   Fuel = "hybrid"
)

var (
	transmissionRule = validation.In(TransmissionAutomatic, TransmissionManual)
	fuelRule         = validation.In(FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid)
)

type Car struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	PricePerDay  float64      `json:"pricePerDay"`
	Seats        int          `json:"seats"`
	Transmission Transmission `json:"transmission"`
	Fuel         Fuel         `json:"fuel"`
	Image        string       `json:"image"`
	Available    bool         `json:"available"`
}

func (c Car) GetID() string { return c.ID }

func (c Car) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&c.PricePerDay, validation.Min(0.0)),
		validation.Field(&c.Seats, validation.Required, validation.Min(1)),
		validation.Field(&c.Transmission, validation.Required, transmissionRule),
		validation.Field(&c.Fuel, validation.Required, fuelRule),
	)
}

type CarPatch struct {
	Name         *string       `json:"name,omitempty"`
	Type         *string       `json:"type,omitempty"`
	PricePerDay  *float64      `json:"pricePerDay,omitempty"`
	Seats        *int          `json:"seats,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
	Fuel         *Fuel         `json:"fuel,omitempty"`
	Image        *string       `json:"image,omitempty"`
	Available    *bool         `json:"available,omitempty"`
}

func (p CarPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&p.PricePerDay, validation.Min(0.0)),
		validation.Field(&p.Seats, validation.Min(1)),
		validation.Field(&p.Transmission, validation.NilOrNotEmpty, transmissionRule),
		validation.Field(&p.Fuel, validation.NilOrNotEmpty, fuelRule),
	)
}

func (p CarPatch) Apply(c Car) Car {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.PricePerDay != nil {
		c.PricePerDay = *p.PricePerDay
	}
	if p.Seats != nil {
		c.Seats = *p.Seats
	}
	if p.Transmission != nil {
		c.Transmission = *p.Transmission
	}
	if p.Fuel != nil {
		c.Fuel = *p.Fuel
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Available != nil {
		c.Available = *p.Available
	}
	return c
}
