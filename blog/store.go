package blog

import (
	"context"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"tourcab/models"
	"tourcab/store"
	"tourcab/utils"
)

type Store struct {
	items *store.Collection[models.BlogPost, int64]
	deps  store.Deps
}

func NewStore(ctx context.Context, deps store.Deps) (*Store, error) {
	deps = deps.WithDefaults()
	items, err := store.OpenWith[models.BlogPost, int64](ctx, deps, store.SlotBlogPosts, Fixtures())
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

func (s *Store) Collection() *store.Collection[models.BlogPost, int64] { return s.items }

func (s *Store) List() []models.BlogPost { return s.items.List() }

func (s *Store) Get(id int64) (models.BlogPost, bool) { return s.items.Find(id) }

func (s *Store) GetBySlug(slug string) (models.BlogPost, bool) {
	return s.items.FindFirst(func(p models.BlogPost) bool { return p.Slug == slug })
}

func (s *Store) Published() []models.BlogPost {
	return s.items.Filter(func(p models.BlogPost) bool { return p.Status == models.PostPublished })
}

func (s *Store) ByCategory(category string) []models.BlogPost {
	return s.items.Filter(func(p models.BlogPost) bool { return strings.EqualFold(p.Category, category) })
}

// Query narrows the admin list by category, given as the type filter.
func (s *Store) Query(opts utils.QueryOptions) []models.BlogPost {
	if opts.Type != "" {
		return s.ByCategory(opts.Type)
	}
	return s.List()
}

func (s *Store) ByTag(tag string) []models.BlogPost {
	return s.items.Filter(func(p models.BlogPost) bool {
		return slices.ContainsFunc(p.Tags, func(t string) bool { return strings.EqualFold(t, tag) })
	})
}

// stampPublished sets PublishedAt the first time a post is published.
func stampPublished(p models.BlogPost, now time.Time) models.BlogPost {
	if p.Status == models.PostPublished && p.PublishedAt == nil {
		t := now
		p.PublishedAt = &t
	}
	return p
}

func (s *Store) Add(ctx context.Context, p models.BlogPost) (models.BlogPost, error) {
	now := s.deps.Stamp()
	p.ID = s.deps.Seq.Next()
	p.Slug = utils.ResolveSlug(p.Slug, p.Title)
	p.Tags = slices.Clone(p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	p = stampPublished(p, now)
	if err := s.items.Append(ctx, p); err != nil {
		return models.BlogPost{}, err
	}
	return p, nil
}

func (s *Store) Update(ctx context.Context, id int64, patch models.BlogPostPatch) (bool, error) {
	now := s.deps.Stamp()
	return s.items.Update(ctx, id, func(old models.BlogPost) models.BlogPost {
		next := patch.Apply(old)
		next.Slug = utils.RenamedSlug(next.Slug, old.Title, next.Title, patch.Slug)
		next.UpdatedAt = now
		return stampPublished(next, now)
	})
}

func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	return s.items.Delete(ctx, id)
}

func (s *Store) DeleteMany(ctx context.Context, ids []int64) (int, error) {
	return s.items.DeleteMany(ctx, ids)
}

// SetStatus moves a post to status, stamping publishedAt on first publish.
func (s *Store) SetStatus(ctx context.Context, id int64, status models.PostStatus) (bool, error) {
	if err := validation.Validate(status, validation.Required, models.PostStatusRule); err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid post status").
			WithTextCode("BAD_STATUS").
			WithMetadata(map[string]any{"status": string(status)})
	}
	now := s.deps.Stamp()
	return s.items.Update(ctx, id, func(p models.BlogPost) models.BlogPost {
		p.Status = status
		p.UpdatedAt = now
		return stampPublished(p, now)
	})
}

type Stats struct {
	Total      int            `json:"total"`
	Published  int            `json:"published"`
	Draft      int            `json:"draft"`
	Archived   int            `json:"archived"`
	ByCategory map[string]int `json:"byCategory"`
}

func (s *Store) Stats() Stats {
	st := Stats{ByCategory: map[string]int{}}
	for _, p := range s.items.List() {
		st.Total++
		switch p.Status {
		case models.PostPublished:
			st.Published++
		case models.PostDraft:
			st.Draft++
		case models.PostArchived:
			st.Archived++
		}
		if p.Category != "" {
			st.ByCategory[p.Category]++
		}
	}
	return st
}
