package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/f1tipp/F1Tipp_Go/internal/betting"
	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

type BetHandler struct {
	service betting.Service
}

func NewBetHandler(service betting.Service) *BetHandler {
	return &BetHandler{service: service}
}

type PlaceBetRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	RaceID    int    `json:"race_id" validate:"required,gt=0"`
	Type      string `json:"type" validate:"required,bettype"`
	Selection string `json:"selection" validate:"required"`
	Stake     int64  `json:"stake" validate:"required,gt=0"`
}

// HandlePlaceBet places a novelty coin wager on a race
// @Summary Place a bet
// @Tags bets
// @Accept json
// @Produce json
// @Success 201 {object} domain.Bet
// @Router /bet [post]
func (h *BetHandler) HandlePlaceBet(w http.ResponseWriter, r *http.Request) {
	var req PlaceBetRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Place bet"); err != nil {
		return
	}

	bet, err := h.service.PlaceBet(r.Context(), req.UserID, req.RaceID, domain.BetType(strings.ToLower(req.Type)), req.Selection, req.Stake)
	if err != nil {
		respondServiceError(w, r, ErrMsgPlaceBetFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, bet)
}

func (h *BetHandler) HandleGetBet(w http.ResponseWriter, r *http.Request) {
	betIDStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	betID, err := uuid.Parse(betIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidBetID, http.StatusBadRequest)
		return
	}

	bet, err := h.service.GetBet(r.Context(), betID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBetFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, bet)
}

func (h *BetHandler) HandleListUserBets(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	bets, err := h.service.ListUserBets(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListBetsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: bets})
}
