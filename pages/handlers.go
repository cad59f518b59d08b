package pages

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

func Match(p models.Page, opts utils.QueryOptions) bool {
	if opts.Status != "" && string(p.Status) != opts.Status {
		return false
	}
	return opts.Search == "" ||
		utils.ContainsIgnoreCase(p.Title, opts.Search) ||
		utils.ContainsIgnoreCase(p.Slug, opts.Search)
}

// GET /api/site/homepage
func (h *Handlers) Homepage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	p, ok := h.Store.Homepage()
	if !ok || p.Status != models.PagePublished {
		utils.WriteError(w, utils.NotFound("homepage"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GET /api/site/page/:slug
func (h *Handlers) BySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, ok := h.Store.GetBySlug(ps.ByName("slug"))
	if !ok || p.Status != models.PagePublished {
		utils.WriteError(w, utils.NotFound("page"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// GET /api/site/pages
func (h *Handlers) Published(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.Published())
}
