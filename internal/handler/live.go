package handler

import (
	"net/http"

	"github.com/f1tipp/F1Tipp_Go/internal/livetiming"
)

type LiveHandler struct {
	service livetiming.Service
}

func NewLiveHandler(service livetiming.Service) *LiveHandler {
	return &LiveHandler{service: service}
}

// HandleLiveSnapshot returns the current running order of a live session
// @Summary Live running order
// @Tags live
// @Produce json
// @Success 200 {object} livetiming.Snapshot
// @Router /live/snapshot [get]
func (h *LiveHandler) HandleLiveSnapshot(w http.ResponseWriter, r *http.Request) {
	sessionKey := GetOptionalQueryParam(r, "session_key", livetiming.LatestSessionKey)

	snapshot, err := h.service.LiveSnapshot(r.Context(), sessionKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgLiveSnapshotFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, snapshot)
}

// HandleProjection scores a race's predictions against the live running order.
// Nothing is persisted; the response is advisory.
func (h *LiveHandler) HandleProjection(w http.ResponseWriter, r *http.Request) {
	raceID, ok := GetIntQueryParam(r, w, "race_id")
	if !ok {
		return
	}
	sessionKey := GetOptionalQueryParam(r, "session_key", livetiming.LatestSessionKey)

	projection, err := h.service.ProjectPoints(r.Context(), raceID, sessionKey)
	if err != nil {
		respondServiceError(w, r, ErrMsgProjectionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, projection)
}
