package auth

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/julienschmidt/httprouter"

	"tourcab/utils"
)

type Handlers struct {
	Service *Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l loginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Email, validation.Required, is.EmailFormat),
		validation.Field(&l.Password, validation.Required),
	)
}

// POST /api/auth/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := utils.Validate(req, "invalid login"); err != nil {
		utils.WriteError(w, err)
		return
	}

	session, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// POST /api/auth/logout
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.Service.Logout(r.Context(), utils.GetUserIDFromRequest(r)); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// GET /api/auth/me
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, ok, err := h.Service.CurrentUser(r.Context(), utils.GetUserIDFromRequest(r))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "no session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
