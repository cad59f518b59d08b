package locations

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

func Match(l models.Location, opts utils.QueryOptions) bool {
	if opts.Status != "" && string(l.Status) != opts.Status {
		return false
	}
	return opts.Search == "" ||
		utils.ContainsIgnoreCase(l.Name, opts.Search) ||
		utils.ContainsIgnoreCase(l.Address, opts.Search)
}

// GET /api/site/locations?type=
//
// Inactive locations are never listed publicly.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	items := h.Store.Active()
	if t := r.URL.Query().Get("type"); t != "" {
		items = utils.Intersect(h.Store.ByType(models.LocationType(t)), items, models.Location.GetID)
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}
