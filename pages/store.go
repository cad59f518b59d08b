package pages

import (
	"context"
	"slices"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

type Store struct {
	items *store.Collection[models.Page, int64]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.Page, int64](ctx, deps, store.SlotPages, Fixtures())
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, items.Len())
	for _, p := range items.List() {
		ids = append(ids, p.ID)
	}
	store.ObserveIDs(deps.Seq, ids)
	return &Store{items: items, deps: deps}, nil
}

func (s *Store) Collection() *store.Collection[models.Page, int64] { return s.items }

func (s *Store) List() []models.Page { return s.items.List() }

func (s *Store) Get(id int64) (models.Page, bool) { return s.items.Find(id) }

func (s *Store) GetBySlug(slug string) (models.Page, bool) {
	return s.items.FindFirst(func(p models.Page) bool { return p.Slug == slug })
}

// Homepage returns the page currently marked as homepage, if any.
func (s *Store) Homepage() (models.Page, bool) {
	return s.items.FindFirst(func(p models.Page) bool { return p.IsHomepage })
}

func (s *Store) Published() []models.Page {
	return s.items.Filter(func(p models.Page) bool { return p.Status == models.PagePublished })
}

// Add stores a new page. A page never becomes the homepage on creation.
func (s *Store) Add(ctx context.Context, p models.Page) (models.Page, error) {
	now := s.deps.Stamp()
	p.ID = s.deps.Seq.Next()
	p.Slug = utils.ResolveSlug(p.Slug, p.Title)
	p.IsHomepage = false
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := s.items.Append(ctx, p); err != nil {
		return models.Page{}, err
	}
	return p, nil
}

func (s *Store) Update(ctx context.Context, id int64, patch models.PagePatch) (bool, error) {
	now := s.deps.Stamp()
	return s.items.Update(ctx, id, func(old models.Page) models.Page {
		next := patch.Apply(old)
		next.Slug = utils.RenamedSlug(next.Slug, old.Title, next.Title, patch.Slug)
		next.UpdatedAt = now
		return next
	})
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

// SetAsHomepage marks id as the only homepage in one persisted write.
// Nothing is written when id is unknown.
func (s *Store) SetAsHomepage(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.items.Find(id); !ok {
		return false, nil
	}
	found := false
	err := s.items.Rewrite(ctx, func(list []models.Page) []models.Page {
		if !slices.ContainsFunc(list, func(p models.Page) bool { return p.ID == id }) {
			return list
		}
		found = true
		for i := range list {
			list[i].IsHomepage = list[i].ID == id
		}
		return list
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

type Stats struct {
	Total     int   `json:"total"`
	Published int   `json:"published"`
	Draft     int   `json:"draft"`
	Homepage  int64 `json:"homepage,omitempty"`
}

func (s *Store) Stats() Stats {
	var st Stats
	for _, p := range s.items.List() {
		st.Total++
		switch p.Status {
		case models.PagePublished:
			st.Published++
		case models.PageDraft:
			st.Draft++
		}
		if p.IsHomepage {
			st.Homepage = p.ID
		}
	}
	return st
}
