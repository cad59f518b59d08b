package tours

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

// Handlers serves the public tour endpoints.
type Handlers struct {
	Store *Store
}

// Match applies the admin search. The featured filter is applied by Query.
func Match(t models.Tour, opts utils.QueryOptions) bool {
	if opts.Search != "" &&
		!utils.ContainsIgnoreCase(t.Title, opts.Search) &&
		!utils.ContainsIgnoreCase(t.Location, opts.Search) {
		return false
	}
	return true
}

// tourView adds the display price to a tour.
type tourView struct {
	models.Tour
	PriceLabel string `json:"priceLabel"`
}

func view(t models.Tour) tourView {
	return tourView{Tour: t, PriceLabel: utils.FormatINR(t.Price)}
}

func views(ts []models.Tour) []tourView {
	out := make([]tourView, 0, len(ts))
	for _, t := range ts {
		out = append(out, view(t))
	}
	return out
}

// GET /api/site/tours?search=&location=&page=&limit=
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := utils.ParseQueryOptions(r)
	items := h.Store.Search(opts.Search)
	if loc := strings.TrimSpace(r.URL.Query().Get("location")); loc != "" {
		items = utils.Intersect(h.Store.ByLocation(loc), items, models.Tour.GetID)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total": len(items),
		"tours": views(utils.Paginate(items, opts)),
	})
}

func (h *Handlers) Featured(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, views(h.Store.Featured()))
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	t, ok := h.Store.Get(ps.ByName("id"))
	if !ok {
		utils.WriteError(w, utils.NotFound("tour"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view(t))
}
