package cars

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

// Match applies the admin search and availability filters. The type filter
// is applied by Query.
func Match(c models.Car, opts utils.QueryOptions) bool {
	switch opts.Status {
	case "available":
		if !c.Available {
			return false
		}
	case "unavailable":
		if c.Available {
			return false
		}
	}
	return opts.Search == "" || utils.ContainsIgnoreCase(c.Name, opts.Search)
}

// GET /api/site/cars?type=&all=1
//
// Only available cars are listed unless all=1.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	all := q.Get("all") == "1"

	var items []models.Car
	switch t := q.Get("type"); {
	case t != "" && all:
		items = h.Store.ByType(t)
	case t != "":
		items = utils.Intersect(h.Store.ByType(t), h.Store.Available(), models.Car.GetID)
	case all:
		items = h.Store.List()
	default:
		items = h.Store.Available()
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
