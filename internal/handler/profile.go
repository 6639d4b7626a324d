package handler

import (
	"net/http"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/profile"
)

type ProfileHandler struct {
	service profile.Service
}

func NewProfileHandler(service profile.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type RegisterRequest struct {
	UserID   string `json:"user_id" validate:"required,max=64"`
	Username string `json:"username" validate:"required,max=64"`
}

// HandleRegister creates a profile for a new player
// @Summary Register a user
// @Tags profiles
// @Accept json
// @Produce json
// @Success 201 {object} domain.Profile
// @Router /profile/register [post]
func (h *ProfileHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
		return
	}

	p, err := h.service.Register(r.Context(), req.UserID, req.Username)
	if err != nil {
		respondServiceError(w, r, ErrMsgRegisterFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := GetOptionalQueryParam(r, "user_id", "")
	username := GetOptionalQueryParam(r, "username", "")
	if userID == "" && username == "" {
		http.Error(w, ErrMsgMissingRequiredData, http.StatusBadRequest)
		return
	}

	var (
		p   *domain.Profile
		err error
	)
	if userID != "" {
		p, err = h.service.GetProfile(r.Context(), userID)
	} else {
		p, err = h.service.GetProfileByUsername(r.Context(), username)
	}
	if err != nil {
		respondServiceError(w, r, ErrMsgGetProfileFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) HandleStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.service.Standings(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetStandingsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: standings})
}
