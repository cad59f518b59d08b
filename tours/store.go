package tours

import (
	"context"
	"strings"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

// Store owns the tour collection.
type Store struct {
	items *store.Collection[models.Tour, string]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Tour, string](ctx, deps, store.SlotTours, Fixtures())
	if err != nil {
		return nil, err
	}
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Tour, string] { return s.items }

func (s *Store) List() []models.Tour { return s.items.List() }

func (s *Store) Get(id string) (models.Tour, bool) { return s.items.Find(id) }

// Add assigns a fresh id and createdAt and appends the tour.
func (s *Store) Add(ctx context.Context, t models.Tour) (models.Tour, error) {
	t.ID = s.deps.IDs.NewID()
	t.CreatedAt = s.deps.Stamp()
	if err := s.items.Append(ctx, t); err != nil {
		return models.Tour{}, err
	}
	return t, nil
}

func (s *Store) Update(ctx context.Context, id string, p models.TourPatch) (bool, error) {
	return s.items.Update(ctx, id, p.Apply)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

func (s *Store) Featured() []models.Tour {
	return s.items.Filter(func(t models.Tour) bool { return t.Featured })
}

// ByLocation matches the location name case-insensitively.
func (s *Store) ByLocation(location string) []models.Tour {
	return s.items.Filter(func(t models.Tour) bool { return strings.EqualFold(t.Location, location) })
}

// Search matches title, description or location.
func (s *Store) Search(term string) []models.Tour {
	term = strings.ToLower(strings.TrimSpace(term))
	return s.items.Filter(func(t models.Tour) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(t.Title), term) ||
			strings.Contains(strings.ToLower(t.Description), term) ||
			strings.Contains(strings.ToLower(t.Location), term)
	})
}

func (s *Store) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	return s.items.Update(ctx, id, func(t models.Tour) models.Tour {
		t.Featured = !t.Featured
		return t
	})
}

// Query narrows the admin list to featured tours when asked.
func (s *Store) Query(opts utils.QueryOptions) []models.Tour {
	if opts.Status == "featured" {
		return s.Featured()
	}
	return s.List()
}

type Stats struct {
	Total         int     `json:"total"`
	Featured      int     `json:"featured"`
	AveragePrice  float64 `json:"averagePrice"`
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

func (s *Store) Stats() Stats {
	var st Stats
	var priceSum, ratingSum float64
	for _, t := range s.items.List() {
		st.Total++
		if t.Featured {
			st.Featured++
		}
		priceSum += t.Price
		ratingSum += t.Rating
		st.TotalReviews += t.ReviewCount
	}
	if st.Total > 0 {
		st.AveragePrice = priceSum / float64(st.Total)
		st.AverageRating = ratingSum / float64(st.Total)
	}
	return st
}
