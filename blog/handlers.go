package blog

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

func Match(p models.BlogPost, opts utils.QueryOptions) bool {
	if opts.Status != "" && string(p.Status) != opts.Status {
		return false
	}
	return opts.Search == "" ||
		utils.ContainsIgnoreCase(p.Title, opts.Search) ||
		utils.ContainsIgnoreCase(p.Excerpt, opts.Search)
}

// GET /api/site/blog?category=&tag=&page=&limit=
//
// tag may list several comma-separated tags; a post matches any of them.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	opts := utils.ParseQueryOptions(r)
	category, tags := q.Get("category"), utils.SplitTags(q.Get("tag"))

	out := h.Store.Published()
	if category != "" {
		out = utils.Intersect(out, h.Store.ByCategory(category), models.BlogPost.GetID)
	}
	if len(tags) > 0 {
		var tagged []models.BlogPost
		for _, tag := range tags {
			tagged = append(tagged, h.Store.ByTag(tag)...)
		}
		out = utils.Intersect(out, tagged, models.BlogPost.GetID)
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"total": len(out),
		"posts": utils.Paginate(out, opts),
	})
}

// GET /api/site/post/:slug
//
// The Markdown body is rendered to HTML alongside the raw post.
func (h *Handlers) BySlug(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	p, ok := h.Store.GetBySlug(ps.ByName("slug"))
	if !ok || p.Status != models.PostPublished {
		utils.WriteError(w, utils.NotFound("post"))
		return
	}
	html, err := utils.RenderMarkdown(p.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"post": p, "html": html})
}

type statusBody struct {
	Status models.PostStatus `json:"status"`
}

// PATCH /api/admin/posts/:id/status
func (h *Handlers) SetStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.ParseInt(ps.ByName("id"), 10, 64)
	if err != nil {
		utils.WriteError(w, utils.NotFound("post"))
		return
	}
	var body statusBody
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, err)
		return
	}
	found, err := h.Store.SetStatus(r.Context(), id, body.Status)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, utils.NotFound("post"))
		return
	}
	p, _ := h.Store.Get(id)
	utils.RespondWithJSON(w, http.StatusOK, p)
}
