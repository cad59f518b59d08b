package admin

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tourcab/booking"
	"tourcab/models"
	"tourcab/utils"
)

const recentBookings = 5

// Dashboard aggregates the per-kind statistics. Stats are recomputed on
// every request.
type Dashboard struct {
	Stats    map[string]func() any
	Bookings *booking.Store
}

// GET /api/admin/stats/:kind
func (d *Dashboard) KindStats(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	kind := ps.ByName("kind")
	stats, ok := d.Stats[kind]
	if !ok {
		utils.WriteError(w, utils.NotFound("stats for "+kind))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats())
}

// GET /api/admin/dashboard
func (d *Dashboard) Overview(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	all := make(map[string]any, len(d.Stats))
	for kind, stats := range d.Stats {
		all[kind] = stats()
	}

	var recent []models.Booking
	if d.Bookings != nil {
		list := d.Bookings.List()
		for i := len(list) - 1; i >= 0 && len(recent) < recentBookings; i-- {
			recent = append(recent, list[i])
		}
	}
	if recent == nil {
		recent = []models.Booking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"stats":          all,
		"recentBookings": recent,
	})
}
