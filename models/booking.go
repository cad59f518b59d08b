package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

var bookingStatuses = []any{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

// BookingStatusRule validates a BookingStatus value.
var BookingStatusRule = validation.In(bookingStatuses...)

// Booking references its tour by copying id and title at creation time.
type Booking struct {
	ID            string        `json:"id"`
	TourID        string        `json:"tourId"`
	TourTitle     string        `json:"tourTitle"`
	CustomerName  string        `json:"customerName"`
	CustomerEmail string        `json:"customerEmail"`
	CustomerPhone string        `json:"customerPhone"`
	Date          string        `json:"date"`
	Guests        int           `json:"guests"`
	TotalPrice    float64       `json:"totalPrice"`
	Status        BookingStatus `json:"status"`
}

func (b Booking) GetID() string { return b.ID }

func (b Booking) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.TourTitle, validation.Required),
		validation.Field(&b.CustomerName, validation.Required),
		validation.Field(&b.CustomerEmail, validation.Required, is.EmailFormat),
		validation.Field(&b.CustomerPhone, validation.Required),
		validation.Field(&b.Date, validation.Required, validation.Date(DateLayout)),
		validation.Field(&b.Guests, validation.Required, validation.Min(1)),
		validation.Field(&b.TotalPrice, validation.Min(0.0)),
		validation.Field(&b.Status, validation.Required, BookingStatusRule),
	)
}

type BookingPatch struct {
	TourID        *string        `json:"tourId,omitempty"`
	TourTitle     *string        `json:"tourTitle,omitempty"`
	CustomerName  *string        `json:"customerName,omitempty"`
	CustomerEmail *string        `json:"customerEmail,omitempty"`
	CustomerPhone *string        `json:"customerPhone,omitempty"`
	Date          *string        `json:"date,omitempty"`
	Guests        *int           `json:"guests,omitempty"`
	TotalPrice    *float64       `json:"totalPrice,omitempty"`
	Status        *BookingStatus `json:"status,omitempty"`
}

func (p BookingPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.TourTitle, validation.NilOrNotEmpty),
		validation.Field(&p.CustomerName, validation.NilOrNotEmpty),
		validation.Field(&p.CustomerEmail, validation.NilOrNotEmpty, is.EmailFormat),
		validation.Field(&p.CustomerPhone, validation.NilOrNotEmpty),
		validation.Field(&p.Date, validation.NilOrNotEmpty, validation.Date(DateLayout)),
		validation.Field(&p.Guests, validation.Min(1)),
		validation.Field(&p.TotalPrice, validation.Min(0.0)),
		validation.Field(&p.Status, validation.NilOrNotEmpty, BookingStatusRule),
	)
}

func (p BookingPatch) Apply(b Booking) Booking {
	if p.TourID != nil {
		b.TourID = *p.TourID
	}
	if p.TourTitle != nil {
		b.TourTitle = *p.TourTitle
	}
	if p.CustomerName != nil {
		b.CustomerName = *p.CustomerName
	}
	if p.CustomerEmail != nil {
		b.CustomerEmail = *p.CustomerEmail
	}
	if p.CustomerPhone != nil {
		b.CustomerPhone = *p.CustomerPhone
	}
	if p.Date != nil {
		b.Date = *p.Date
	}
	if p.Guests != nil {
		b.Guests = *p.Guests
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
	return b
}
