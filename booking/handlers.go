package booking

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Store *Store
}

// Match applies the admin search over the customer and tour. The status
// filter is applied by Query.
func Match(b models.Booking, opts utils.QueryOptions) bool {
	if opts.Search != "" &&
		!utils.ContainsIgnoreCase(b.CustomerName, opts.Search) &&
		!utils.ContainsIgnoreCase(b.CustomerEmail, opts.Search) &&
		!utils.ContainsIgnoreCase(b.TourTitle, opts.Search) {
		return false
	}
	return true
}

type statusBody struct {
	Status models.BookingStatus `json:"status"`
}

// PATCH /api/admin/bookings/:id/status
func (h *Handlers) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body statusBody
	if err := utils.DecodeJSON(r, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	found, err := h.Store.UpdateStatus(r.Context(), ps.ByName("id"), body.Status)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !found {
		utils.WriteError(w, utils.NotFound("booking"))
		return
	}
	b, _ := h.Store.Get(ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, b)
}

// GET /api/admin/tours/:id/bookings
func (h *Handlers) ByTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, h.Store.ByTour(ps.ByName("id")))
}
