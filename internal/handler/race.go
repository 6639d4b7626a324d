package handler

import (
	"net/http"

	"github.com/f1tipp/F1Tipp_Go/internal/calendar"
)

type RaceHandler struct {
	service calendar.Service
}

func NewRaceHandler(service calendar.Service) *RaceHandler {
	return &RaceHandler{service: service}
}

// HandleSyncCalendar pulls the season schedule from the results provider
// @Summary Sync the race calendar
// @Tags races
// @Produce json
// @Success 200 {object} calendar.SyncReport
// @Router /races/sync [post]
func (h *RaceHandler) HandleSyncCalendar(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.SyncSeason(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgSyncCalendarFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: MsgCalendarSyncedSuccess, Data: report})
}

func (h *RaceHandler) HandleListRaces(w http.ResponseWriter, r *http.Request) {
	races, err := h.service.ListRaces(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListRacesFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: races})
}

func (h *RaceHandler) HandleGetRace(w http.ResponseWriter, r *http.Request) {
	raceID, ok := GetIntQueryParam(r, w, "id")
	if !ok {
		return
	}

	race, err := h.service.GetRace(r.Context(), raceID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRaceFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, race)
}

func (h *RaceHandler) HandleNextRace(w http.ResponseWriter, r *http.Request) {
	race, err := h.service.NextRace(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetRaceFailed, err)
		return
	}
	if race == nil {
		http.Error(w, ErrMsgNoUpcomingRace, http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, race)
}
