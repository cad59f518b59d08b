package locations

import (
	"context"
	"strings"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

type Store struct {
	items *store.Collection[models.Location, string]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Location, string](ctx, deps, store.SlotLocations, Fixtures())
	if err != nil {
		return nil, err
	}
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Location, string] { return s.items }

func (s *Store) List() []models.Location { return s.items.List() }

func (s *Store) Get(id string) (models.Location, bool) { return s.items.Find(id) }

func (s *Store) Add(ctx context.Context, l models.Location) (models.Location, error) {
	l.ID = s.deps.IDs.NewID()
	if l.Status == "" {
		l.Status = models.LocationActive
	}
	if err := s.items.Append(ctx, l); err != nil {
		return models.Location{}, err
	}
	return l, nil
}

// Update merges p over the location. Coordinates are replaced whole.
func (s *Store) Update(ctx context.Context, id string, p models.LocationPatch) (bool, error) {
	return s.items.Update(ctx, id, p.Apply)
}

func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

// ByType matches the location type case-insensitively.
func (s *Store) ByType(t models.LocationType) []models.Location {
	return s.items.Filter(func(l models.Location) bool { return strings.EqualFold(string(l.Type), string(t)) })
}

// Query narrows the admin list by type.
func (s *Store) Query(opts utils.QueryOptions) []models.Location {
	if opts.Type != "" {
		return s.ByType(models.LocationType(opts.Type))
	}
	return s.List()
}

func (s *Store) Active() []models.Location {
	return s.items.Filter(func(l models.Location) bool { return l.Status == models.LocationActive })
}

// ToggleStatus flips a location between active and inactive.
func (s *Store) ToggleStatus(ctx context.Context, id string) (bool, error) {
	return s.items.Update(ctx, id, func(l models.Location) models.Location {
		if l.Status == models.LocationActive {
			l.Status = models.LocationInactive
		} else {
			l.Status = models.LocationActive
		}
		return l
	})
}

type Stats struct {
	Total    int                         `json:"total"`
	Active   int                         `json:"active"`
	Inactive int                         `json:"inactive"`
	ByType   map[models.LocationType]int `json:"byType"`
}

func (s *Store) Stats() Stats {
	st := Stats{ByType: map[models.LocationType]int{}}
	for _, l := range s.items.List() {
		st.Total++
		if l.Status == models.LocationActive {
			st.Active++
		} else {
			st.Inactive++
		}
		st.ByType[l.Type]++
	}
	return st
}
