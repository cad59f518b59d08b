package inquiry

import (
	"fmt"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tourcab/models"
	"tourcab/utils"
)

// BookingInquiry is the site's "book this tour" form.
type BookingInquiry struct {
	TourID  string `json:"tourId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Guests  int    `json:"guests"`
	Message string `json:"message"`
}

func (b BookingInquiry) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.TourID, validation.Required),
		validation.Field(&b.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&b.Email, validation.Required, is.EmailFormat),
		validation.Field(&b.Phone, validation.Required, validation.Length(6, 20)),
		validation.Field(&b.Date, validation.Required, validation.Date(models.DateLayout)),
		validation.Field(&b.Guests, validation.Required, validation.Min(1), validation.Max(50)),
		validation.Field(&b.Message, validation.Length(0, 1000)),
	)
}

// ContactInquiry is the site's contact form.
type ContactInquiry struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c ContactInquiry) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&c.Email, validation.Required, is.EmailFormat),
		validation.Field(&c.Phone, validation.Length(0, 20)),
		validation.Field(&c.Subject, validation.Length(0, 200)),
		validation.Field(&c.Message, validation.Required, validation.Length(1, 2000)),
	)
}

// Composer builds prefilled WhatsApp links to the business number.
// Nothing is sent; the visitor's browser opens the link.
type Composer struct {
	Number string
}

// Link is a composed message and the deep link that carries it.
type Link struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (c Composer) link(text string) Link {
	var digits strings.Builder
	for _, r := range c.Number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return Link{
		Message: text,
		URL:     "https://wa.me/" + digits.String() + "?text=" + escaped,
	}
}

// Booking formats a tour inquiry. total is the quoted price for all guests.
func (c Composer) Booking(in BookingInquiry, tour models.Tour, total float64) Link {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello! I would like to book a tour.\n\n")
	fmt.Fprintf(&b, "Tour: %s\n", tour.Title)
	fmt.Fprintf(&b, "Date: %s\n", in.Date)
	fmt.Fprintf(&b, "Guests: %d\n", in.Guests)
	fmt.Fprintf(&b, "Estimated total: %s\n\n", utils.FormatINR(total))
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\nPhone: %s", in.Name, in.Email, in.Phone)
	if msg := strings.TrimSpace(in.Message); msg != "" {
		fmt.Fprintf(&b, "\n\n%s", msg)
	}
	return c.link(b.String())
}

// Contact formats a general inquiry.
func (c Composer) Contact(in ContactInquiry) Link {
	var b strings.Builder
	b.WriteString("Hello! I have an inquiry.\n\n")
	if s := strings.TrimSpace(in.Subject); s != "" {
		fmt.Fprintf(&b, "Subject: %s\n", s)
	}
	fmt.Fprintf(&b, "Name: %s\nEmail: %s\n", in.Name, in.Email)
	if p := strings.TrimSpace(in.Phone); p != "" {
		fmt.Fprintf(&b, "Phone: %s\n", p)
	}
	fmt.Fprintf(&b, "\n%s", strings.TrimSpace(in.Message))
	return c.link(b.String())
}
