package handler

import (
	"net/http"
	"strings"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/prediction"
)

type PredictionHandler struct {
	service prediction.Service
}

func NewPredictionHandler(service prediction.Service) *PredictionHandler {
	return &PredictionHandler{service: service}
}

type SubmitPredictionRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	RaceID     int    `json:"race_id" validate:"required,gt=0"`
	Session    string `json:"session" validate:"required,session"`
	Pole       int    `json:"pole"`
	P1         int    `json:"p1"`
	P2         int    `json:"p2"`
	P3         int    `json:"p3"`
	FastestLap int    `json:"fastest_lap"`
}

// HandleSubmitPrediction stores or overwrites a podium prediction
// @Summary Submit a podium prediction
// @Tags predictions
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /prediction [post]
func (h *PredictionHandler) HandleSubmitPrediction(w http.ResponseWriter, r *http.Request) {
	var req SubmitPredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit prediction"); err != nil {
		return
	}

	p := &domain.Prediction{
		UserID:      req.UserID,
		RaceID:      req.RaceID,
		SessionType: domain.SessionType(strings.ToLower(req.Session)),
		Pole:        domain.DriverID(req.Pole),
		P1:          domain.DriverID(req.P1),
		P2:          domain.DriverID(req.P2),
		P3:          domain.DriverID(req.P3),
		FastestLap:  domain.DriverID(req.FastestLap),
	}
	if err := h.service.SubmitPrediction(r.Context(), p); err != nil {
		respondServiceError(w, r, ErrMsgSubmitPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgPredictionSavedSuccess})
}

func (h *PredictionHandler) HandleGetPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	raceID, ok := GetIntQueryParam(r, w, "race_id")
	if !ok {
		return
	}
	session := GetOptionalQueryParam(r, "session", string(domain.SessionRace))

	p, err := h.service.GetPrediction(r.Context(), userID, raceID, domain.SessionType(strings.ToLower(session)))
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *PredictionHandler) HandleListUserPredictions(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	predictions, err := h.service.ListUserPredictions(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgListPredictionsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: predictions})
}

type SubmitBonusPredictionRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	RaceID        int    `json:"race_id" validate:"required,gt=0"`
	SafetyCar     *bool  `json:"safety_car"`
	RedFlag       *bool  `json:"red_flag"`
	Rain          *bool  `json:"rain"`
	FirstDNF      int    `json:"first_dnf"`
	DriverOfDay   int    `json:"driver_of_day"`
	MostOvertakes int    `json:"most_overtakes"`
	DNFCount      string `json:"dnf_count"`
}

func (h *PredictionHandler) HandleSubmitBonusPrediction(w http.ResponseWriter, r *http.Request) {
	var req SubmitBonusPredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit bonus prediction"); err != nil {
		return
	}

	p := &domain.BonusPrediction{
		UserID:        req.UserID,
		RaceID:        req.RaceID,
		SafetyCar:     req.SafetyCar,
		RedFlag:       req.RedFlag,
		Rain:          req.Rain,
		FirstDNF:      domain.DriverID(req.FirstDNF),
		DriverOfDay:   domain.DriverID(req.DriverOfDay),
		MostOvertakes: domain.DriverID(req.MostOvertakes),
		DNFCount:      domain.DNFBucket(req.DNFCount),
	}
	if err := h.service.SubmitBonusPrediction(r.Context(), p); err != nil {
		respondServiceError(w, r, ErrMsgSubmitPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgBonusSavedSuccess})
}

func (h *PredictionHandler) HandleGetBonusPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	raceID, ok := GetIntQueryParam(r, w, "race_id")
	if !ok {
		return
	}

	p, err := h.service.GetBonusPrediction(r.Context(), userID, raceID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

type SubmitSeasonPredictionRequest struct {
	UserID          string `json:"user_id" validate:"required"`
	DriverP1        int    `json:"driver_p1"`
	DriverP2        int    `json:"driver_p2"`
	DriverP3        int    `json:"driver_p3"`
	ConstructorP1   string `json:"constructor_p1"`
	ConstructorP2   string `json:"constructor_p2"`
	ConstructorP3   string `json:"constructor_p3"`
	MostWinsDriver  int    `json:"most_wins_driver"`
	MostPolesDriver int    `json:"most_poles_driver"`
	MostDNFsDriver  int    `json:"most_dnfs_driver"`
}

func (h *PredictionHandler) HandleSubmitSeasonPrediction(w http.ResponseWriter, r *http.Request) {
	var req SubmitSeasonPredictionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Submit season prediction"); err != nil {
		return
	}

	p := &domain.SeasonPrediction{
		UserID:          req.UserID,
		DriverP1:        domain.DriverID(req.DriverP1),
		DriverP2:        domain.DriverID(req.DriverP2),
		DriverP3:        domain.DriverID(req.DriverP3),
		ConstructorP1:   domain.ConstructorID(req.ConstructorP1),
		ConstructorP2:   domain.ConstructorID(req.ConstructorP2),
		ConstructorP3:   domain.ConstructorID(req.ConstructorP3),
		MostWinsDriver:  domain.DriverID(req.MostWinsDriver),
		MostPolesDriver: domain.DriverID(req.MostPolesDriver),
		MostDNFsDriver:  domain.DriverID(req.MostDNFsDriver),
	}
	if err := h.service.SubmitSeasonPrediction(r.Context(), p); err != nil {
		respondServiceError(w, r, ErrMsgSubmitPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgSeasonSavedSuccess})
}

func (h *PredictionHandler) HandleGetSeasonPrediction(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	p, err := h.service.GetSeasonPrediction(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetPredictionFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}
