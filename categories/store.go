package categories

import (
	"context"
	"strings"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

type Store struct {
	items *store.Collection[models.Category, string]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Category, string](ctx, deps, store.SlotCategories, Fixtures())
	if err != nil {
		return nil, err
	}
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Category, string] { return s.items }

func (s *Store) List() []models.Category { return s.items.List() }

func (s *Store) Get(id string) (models.Category, bool) { return s.items.Find(id) }

func (s *Store) GetBySlug(slug string) (models.Category, bool) {
	return s.items.FindFirst(func(c models.Category) bool { return c.Slug == slug })
}

// ByType matches the category type case-insensitively.
func (s *Store) ByType(t models.CategoryType) []models.Category {
	return s.items.Filter(func(c models.Category) bool { return strings.EqualFold(string(c.Type), string(t)) })
}

func (s *Store) Published() []models.Category {
	return s.items.Filter(func(c models.Category) bool { return c.Status == models.CategoryPublish })
}

// Query narrows the admin list by type.
func (s *Store) Query(opts utils.QueryOptions) []models.Category {
	if opts.Type != "" {
		return s.ByType(models.CategoryType(opts.Type))
	}
	return s.List()
}

// Children lists categories whose parent is parentID. An empty parentID
// lists the top-level categories.
func (s *Store) Children(parentID string) []models.Category {
	return s.items.Filter(func(c models.Category) bool {
		if parentID == "" {
			return c.Parent == nil
		}
		return c.Parent != nil && *c.Parent == parentID
	})
}

func (s *Store) Add(ctx context.Context, c models.Category) (models.Category, error) {
	c.ID = s.deps.IDs.NewID()
	c.Slug = utils.ResolveSlug(c.Slug, c.Name)
	c.CreatedAt = s.deps.Stamp()
	if err := s.items.Append(ctx, c); err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (s *Store) Update(ctx context.Context, id string, p models.CategoryPatch) (bool, error) {
	return s.items.Update(ctx, id, func(old models.Category) models.Category {
		next := p.Apply(old)
		next.Slug = utils.RenamedSlug(next.Slug, old.Name, next.Name, p.Slug)
		return next
	})
}

// Delete removes the category. Children keep their parent id.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []string) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

type Stats struct {
	Total     int                         `json:"total"`
	Published int                         `json:"published"`
	Draft     int                         `json:"draft"`
	ByType    map[models.CategoryType]int `json:"byType"`
}

func (s *Store) Stats() Stats {
	st := Stats{ByType: map[models.CategoryType]int{}}
	for _, c := range s.items.List() {
		st.Total++
		if c.Status == models.CategoryPublish {
			st.Published++
		} else {
			st.Draft++
		}
		st.ByType[c.Type]++
	}
	return st
}
