package categories

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

func Match(c models.Category, opts utils.QueryOptions) bool {
	if opts.Status != "" && string(c.Status) != opts.Status {
		return false
	}
	return opts.Search == "" || utils.ContainsIgnoreCase(c.Name, opts.Search)
}

// GET /api/site/categories?type=&parent=
//
// Only published categories are listed.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	items := h.Store.Published()
	if q.Has("parent") {
		items = utils.Intersect(items, h.Store.Children(q.Get("parent")), models.Category.GetID)
	}
	if t := q.Get("type"); t != "" {
		items = utils.Intersect(items, h.Store.ByType(models.CategoryType(t)), models.Category.GetID)
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
