package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/f1tipp/F1Tipp_Go/internal/metrics"
	"github.com/f1tipp/F1Tipp_Go/internal/profile"
	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

type SettlementHandler struct {
	service  settlement.Service
	profiles profile.Service
}

func NewSettlementHandler(service settlement.Service, profiles profile.Service) *SettlementHandler {
	return &SettlementHandler{
		service:  service,
		profiles: profiles,
	}
}

// HandleRunSettlement settles rounds selected by query parameters: round=N for
// one round, rounds=1,2,3 for a list, all=true for every race whose date has
// passed, auto=true for passed races not yet marked finished.
// @Summary Run settlement
// @Tags settlement
// @Produce json
// @Success 200 {array} settlement.RoundReport
// @Router /settlement/run [post]
func (h *SettlementHandler) HandleRunSettlement(w http.ResponseWriter, r *http.Request) {
	reports, handled := h.runSelected(w, r)
	if !handled {
		return
	}

	h.recordReports(reports)
	respondJSON(w, http.StatusOK, DataResponse{Data: reports})
}

// runSelected dispatches on the query parameters. The bool is false when an
// error response has already been written.
func (h *SettlementHandler) runSelected(w http.ResponseWriter, r *http.Request) ([]settlement.RoundReport, bool) {
	query := r.URL.Query()

	switch {
	case query.Get("round") != "":
		round, err := strconv.Atoi(query.Get("round"))
		if err != nil || round <= 0 {
			http.Error(w, fmt.Sprintf(ErrMsgInvalidIntParam, "round"), http.StatusBadRequest)
			return nil, false
		}
		report, err := h.service.SettleRound(r.Context(), round)
		if err != nil {
			metrics.SettlementErrors.Inc()
			respondServiceError(w, r, ErrMsgSettleRoundFailed, err)
			return nil, false
		}
		return []settlement.RoundReport{*report}, true

	case query.Get("rounds") != "":
		rounds, err := parseRoundList(query.Get("rounds"))
		if err != nil {
			http.Error(w, fmt.Sprintf(ErrMsgInvalidIntParam, "rounds"), http.StatusBadRequest)
			return nil, false
		}
		return h.service.SettleRounds(r.Context(), rounds), true

	case query.Get("all") == "true":
		reports, err := h.service.SettleAllPassed(r.Context())
		if err != nil {
			metrics.SettlementErrors.Inc()
			respondServiceError(w, r, ErrMsgSettleRoundFailed, err)
			return nil, false
		}
		return reports, true

	case query.Get("auto") == "true":
		reports, err := h.service.SettleAuto(r.Context())
		if err != nil {
			metrics.SettlementErrors.Inc()
			respondServiceError(w, r, ErrMsgSettleRoundFailed, err)
			return nil, false
		}
		return reports, true
	}

	http.Error(w, ErrMsgSettlementModeRequired, http.StatusBadRequest)
	return nil, false
}

// recordReports updates settlement metrics and drops the cached leaderboard
// once any round actually settled.
func (h *SettlementHandler) recordReports(reports []settlement.RoundReport) {
	settled := 0
	for _, report := range reports {
		if report.Error != "" {
			metrics.SettlementErrors.Inc()
			continue
		}
		settled++
	}
	if settled > 0 {
		metrics.RoundsSettled.Add(float64(settled))
		h.profiles.InvalidateStandings()
	}
}

func parseRoundList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	rounds := make([]int, 0, len(parts))
	for _, part := range parts {
		round, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || round <= 0 {
			return nil, strconv.ErrSyntax
		}
		rounds = append(rounds, round)
	}
	return rounds, nil
}

// HandleSettleBets re-runs only the bet leg of one round, for recovery after
// a partial settlement.
func (h *SettlementHandler) HandleSettleBets(w http.ResponseWriter, r *http.Request) {
	round, err := strconv.Atoi(r.URL.Query().Get("round"))
	if err != nil || round <= 0 {
		http.Error(w, fmt.Sprintf(ErrMsgInvalidIntParam, "round"), http.StatusBadRequest)
		return
	}

	report, err := h.service.SettleBets(r.Context(), round)
	if err != nil {
		metrics.SettlementErrors.Inc()
		respondServiceError(w, r, ErrMsgSettleBetsFailed, err)
		return
	}

	if report.BetsSettled > 0 {
		h.profiles.InvalidateStandings()
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleSettleSeason scores all season predictions against the current
// championship standings.
func (h *SettlementHandler) HandleSettleSeason(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.SettleSeason(r.Context())
	if err != nil {
		metrics.SettlementErrors.Inc()
		respondServiceError(w, r, ErrMsgSettleSeasonFailed, err)
		return
	}

	h.profiles.InvalidateStandings()
	respondJSON(w, http.StatusOK, report)
}

// HandleRecomputeAggregates re-derives every user's total points and coin
// credits from stored predictions.
func (h *SettlementHandler) HandleRecomputeAggregates(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RecomputeAggregates(r.Context()); err != nil {
		respondServiceError(w, r, ErrMsgRecomputeFailed, err)
		return
	}

	h.profiles.InvalidateStandings()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgAggregatesRecomputed})
}
