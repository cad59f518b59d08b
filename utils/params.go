package utils

import (
	"net/http"
	"strconv"
	"strings"
)

// Upper bounds for the page query parameters.
const (
	MaxPage  = 100000
	MaxLimit = 100
)

type QueryOptions struct {
	Page   int
	Limit  int
	Search string
	Status string
	Type   string
}

func ParseQueryOptions(r *http.Request) QueryOptions {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return QueryOptions{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(q.Get("search")),
		Status: q.Get("status"),
		Type:   q.Get("type"),
	}
}

// Paginate slices items by the page options. A zero Limit returns everything.
func Paginate[T any](items []T, opts QueryOptions) []T {
	if opts.Limit <= 0 {
		return items
	}
	if opts.Page < 1 || opts.Page-1 > len(items)/opts.Limit {
		return []T{}
	}
	start := (opts.Page - 1) * opts.Limit
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + opts.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// Intersect keeps the items of a whose key also appears in b, in a's order.
func Intersect[E any, K comparable](a, b []E, key func(E) K) []E {
	in := make(map[K]struct{}, len(b))
	for _, e := range b {
		in[key(e)] = struct{}{}
	}
	out := make([]E, 0, len(a))
	for _, e := range a {
		if _, ok := in[key(e)]; ok {
			out = append(out, e)
		}
	}
	return out
}

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}
