package receipts

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
	"github.com/julienschmidt/httprouter"

	"tourcab/booking"
	"tourcab/models"
	"tourcab/utils"
)

type Handlers struct {
	Signer   Signer
	Bookings *booking.Store
}

// GET /api/admin/bookings/:id/receipt
func (h *Handlers) Print(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	b, ok := h.Bookings.Get(ps.ByName("id"))
	if !ok {
		utils.WriteError(w, utils.NotFound("booking"))
		return
	}
	if b.Status == models.BookingCancelled {
		utils.WriteError(w, goerrors.New("booking is cancelled", goerrors.CategoryConflict).WithTextCode("CANCELLED"))
		return
	}

	pdf, err := h.Signer.Render(b)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=receipt-"+utils.SanitizeFilename(b.ID)+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

type verifyRequest struct {
	Payload string `json:"payload"`
}

// POST /api/admin/receipts/verify
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req verifyRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err)
		return
	}
	id, err := h.Signer.Verify(req.Payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	b, ok := h.Bookings.Get(id)
	if !ok {
		utils.WriteError(w, utils.NotFound("booking"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"valid": true, "booking": b})
}
