package inquiry

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"tourcab/booking"
	"tourcab/tours"
	"tourcab/utils"
)

type Handlers struct {
	Composer Composer
	Tours    *tours.Store
	Bookings *booking.Store
	Logger   *zap.SugaredLogger
}

// POST /api/site/booking-inquiry
//
// Records a pending booking and returns the deep link for the visitor to
// send.
func (h *Handlers) Booking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in BookingInquiry
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.Validate(in, "invalid booking inquiry"); err != nil {
		utils.WriteError(w, err)
		return
	}

	tour, ok := h.Tours.Get(in.TourID)
	if !ok {
		utils.WriteError(w, utils.NotFound("tour"))
		return
	}

	b, err := h.Bookings.CreateForTour(r.Context(), tour, booking.Request{
		CustomerName:  in.Name,
		CustomerEmail: in.Email,
		CustomerPhone: in.Phone,
		Date:          in.Date,
		Guests:        in.Guests,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if h.Logger != nil {
		h.Logger.Infow("booking inquiry", "booking", b.ID, "tour", tour.ID)
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"booking": b,
		"link":    h.Composer.Booking(in, tour, b.TotalPrice),
	})
}

// POST /api/site/contact-inquiry
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in ContactInquiry
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.Validate(in, "invalid contact inquiry"); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"link": h.Composer.Contact(in)})
}
