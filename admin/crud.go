package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/julienschmidt/httprouter"

	"tourcab/utils"
)

type validatable interface {
	Validate() error
}

// Store is what every entity store offers the back-office.
type Store[E any, K comparable, P any] interface {
	List() []E
	Get(id K) (E, bool)
	Add(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, id K, patch P) (bool, error)
	Delete(ctx context.Context, id K) (bool, error)
	DeleteMany(ctx context.Context, ids []K) (int, error)
}

// CRUD serves list/get/create/update/delete for one entity kind.
type CRUD[E validatable, K comparable, P validatable] struct {
	Kind    string
	Store   Store[E, K, P]
	ParseID func(string) (K, error)
	// Query picks the records the list filters start from. Store.List is
	// used when it is nil.
	Query func(utils.QueryOptions) []E
	Match func(E, utils.QueryOptions) bool
}

// StringID accepts any non-empty id.
func StringID(s string) (string, error) {
	if s == "" {
		return "", goerrors.New("missing id", goerrors.CategoryBadInput).WithTextCode("BAD_ID")
	}
	return s, nil
}

// IntID parses numeric ids.
func IntID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, goerrors.New("id must be a number", goerrors.CategoryBadInput).WithTextCode("BAD_ID")
	}
	return id, nil
}

func (c *CRUD[E, K, P]) id(ps httprouter.Params) (K, error) {
	return c.ParseID(ps.ByName("id"))
}

// GET /api/admin/<kind>?search=&status=&type=&page=&limit=
func (c *CRUD[E, K, P]) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	var items []E
	if c.Query != nil {
		items = c.Query(opts)
	} else {
		items = c.Store.List()
	}
	matched := make([]E, 0, len(items))
	for _, e := range items {
		if c.Match == nil || c.Match(e, opts) {
			matched = append(matched, e)
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total": len(matched),
		"page":  opts.Page,
		"items": utils.Paginate(matched, opts),
	})
}

func (c *CRUD[E, K, P]) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := c.id(ps)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	e, ok := c.Store.Get(id)
	if !ok {
		utils.WriteError(w, utils.NotFound(c.Kind))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, e)
}

// Create validates the body and adds it. Ids and timestamps in the body
// are replaced by the store.
func (c *CRUD[E, K, P]) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var e E
	if err := utils.DecodeJSON(r, &e); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.Validate(e, "invalid "+c.Kind); err != nil {
		utils.WriteError(w, err)
		return
	}
	created, err := c.Store.Add(r.Context(), e)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, created)
}

// Update merges the patch body over the record. Absent fields are kept.
func (c *CRUD[E, K, P]) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := c.id(ps)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var patch P
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.Validate(patch, "invalid "+c.Kind); err != nil {
		utils.WriteError(w, err)
		return
	}
	found, err := c.Store.Update(r.Context(), id, patch)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, utils.NotFound(c.Kind))
		return
	}
	e, _ := c.Store.Get(id)
	utils.RespondWithJSON(w, http.StatusOK, e)
}

func (c *CRUD[E, K, P]) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := c.id(ps)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	found, err := c.Store.Delete(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, utils.NotFound(c.Kind))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type bulkRequest struct {
	IDs []string `json:"ids"`
}

// BulkDelete removes every listed id. Unknown ids are skipped.
//
// DELETE /api/admin/<kind> {"ids": [...]}
func (c *CRUD[E, K, P]) BulkDelete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bulkRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err)
		return
	}
	if len(req.IDs) == 0 {
		utils.WriteError(w, goerrors.New("ids must not be empty", goerrors.CategoryBadInput).WithTextCode("BAD_ID"))
		return
	}
	ids := make([]K, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := c.ParseID(strings.TrimSpace(raw))
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		ids = append(ids, id)
	}
	n, err := c.Store.DeleteMany(r.Context(), ids)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"deleted": n})
}

// Toggle wraps a one-bit flip such as availability or featured.
func Toggle[E any, K comparable](kind string, parse func(string) (K, error), flip func(context.Context, K) (bool, error), get func(K) (E, bool)) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		id, err := parse(ps.ByName("id"))
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		found, err := flip(r.Context(), id)
		if err != nil {
			utils.WriteError(w, err)
			return
		}
		if !found {
			utils.WriteError(w, utils.NotFound(kind))
			return
		}
		e, _ := get(id)
		utils.RespondWithJSON(w, http.StatusOK, e)
	}
}

// Register mounts the CRUD routes under base, each wrapped by guard.
func (c *CRUD[E, K, P]) Register(router *httprouter.Router, base string, guard func(httprouter.Handle) httprouter.Handle) {
	router.GET(base, guard(c.List))
	router.POST(base, guard(c.Create))
	router.DELETE(base, guard(c.BulkDelete))
	router.GET(base+"/:id", guard(c.Get))
	router.PUT(base+"/:id", guard(c.Update))
	router.DELETE(base+"/:id", guard(c.Delete))
}
