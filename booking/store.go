package booking

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

type Store struct {
	items *store.Collection[models.Booking, string]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Booking, string](ctx, deps, store.SlotBookings, Fixtures())
	if err != nil {
		return nil, err
	}
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Booking, string] { return s.items }

func (s *Store) List() []models.Booking { return s.items.List() }

func (s *Store) Get(id string) (models.Booking, bool) { return s.items.Find(id) }

func (s *Store) Add(ctx context.Context, b models.Booking) (models.Booking, error) {
	b.ID = s.deps.IDs.NewID()
	if b.Status == "" {
		b.Status = models.BookingPending
	}
	if err := s.items.Append(ctx, b); err != nil {
		return models.Booking{}, err
	}
	return b, nil
}

func (s *Store) Update(ctx context.Context, id string, p models.BookingPatch) (bool, error) {
	return s.items.Update(ctx, id, p.Apply)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

func (s *Store) ByStatus(status models.BookingStatus) []models.Booking {
	return s.items.Filter(func(b models.Booking) bool { return b.Status == status })
}

// Query narrows the admin list by status.
func (s *Store) Query(opts utils.QueryOptions) []models.Booking {
	if opts.Status != "" {
		return s.ByStatus(models.BookingStatus(opts.Status))
	}
	return s.List()
}

func (s *Store) ByTour(tourID string) []models.Booking {
	return s.items.Filter(func(b models.Booking) bool { return b.TourID == tourID })
}

// UpdateStatus moves a booking to status. Unknown statuses are rejected
// before anything is written.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.BookingStatus) (bool, error) {
	if err := validation.Validate(status, validation.Required, models.BookingStatusRule); err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid booking status").
			WithTextCode("BAD_STATUS").
			WithMetadata(map[string]any{"status": string(status)})
	}
	return s.items.Update(ctx, id, func(b models.Booking) models.Booking {
		b.Status = status
		return b
	})
}

// Request is what a customer supplies when booking a tour.
type Request struct {
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Guests        int    `json:"guests"`
}

// CreateForTour records a pending booking that copies the tour's id and
// title and prices it at tour.Price per guest.
func (s *Store) CreateForTour(ctx context.Context, tour models.Tour, req Request) (models.Booking, error) {
	b := models.Booking{
		TourID:        tour.ID,
		TourTitle:     tour.Title,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Date:          req.Date,
		Guests:        req.Guests,
		TotalPrice:    tour.Price * float64(req.Guests),
		Status:        models.BookingPending,
	}
	if err := goerrors.ValidateWithOzzo(b.Validate, "invalid booking"); err != nil {
		return models.Booking{}, err
	}
	return s.Add(ctx, b)
}

type Stats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Cancelled    int     `json:"cancelled"`
	Completed    int     `json:"completed"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// Stats counts bookings by status. Revenue excludes cancelled bookings.
func (s *Store) Stats() Stats {
	var st Stats
	for _, b := range s.items.List() {
		st.Total++
		switch b.Status {
		case models.BookingPending:
			st.Pending++
		case models.BookingConfirmed:
			st.Confirmed++
		case models.BookingCancelled:
			st.Cancelled++
		case models.BookingCompleted:
			st.Completed++
		}
		if b.Status != models.BookingCancelled {
			st.TotalRevenue += b.TotalPrice
		}
	}
	return st
}
