package cars

import (
	"context"
	"strings"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

// Store owns the fleet.
type Store struct {
	items *store.Collection[models.Car, string]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Car, string](ctx, deps, store.SlotCars, Fixtures())
	if err != nil {
		return nil, err
	}
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Car, string] { return s.items }

func (s *Store) List() []models.Car { return s.items.List() }

func (s *Store) Get(id string) (models.Car, bool) { return s.items.Find(id) }

func (s *Store) Add(ctx context.Context, c models.Car) (models.Car, error) {
	c.ID = s.deps.IDs.NewID()
	if err := s.items.Append(ctx, c); err != nil {
		return models.Car{}, err
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, id string, p models.CarPatch) (bool, error) {
	return s.items.Update(ctx, id, p.Apply)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

func (s *Store) Available() []models.Car {
	return s.items.Filter(func(c models.Car) bool { return c.Available })
}

func (s *Store) ByType(carType string) []models.Car {
	return s.items.Filter(func(c models.Car) bool { return strings.EqualFold(c.Type, carType) })
}

func (s *Store) ToggleAvailability(ctx context.Context, id string) (bool, error) {
	return s.items.Update(ctx, id, func(c models.Car) models.Car {
		c.Available = !c.Available
		return c
	})
}

// Query narrows the admin list by type.
func (s *Store) Query(opts utils.QueryOptions) []models.Car {
	if opts.Type != "" {
		return s.ByType(opts.Type)
	}
	return s.List()
}

type Stats struct {
	Total       int            `json:"total"`
	Available   int            `json:"available"`
	Unavailable int            `json:"unavailable"`
	ByType      map[string]int `json:"byType"`
}

func (s *Store) Stats() Stats {
	st := Stats{ByType: map[string]int{}}
	for _, c := range s.items.List() {
		st.Total++
		if c.Available {
			st.Available++
		} else {
			st.Unavailable++
		}
		st.ByType[c.Type]++
	}
	return st
}
