package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/settlement"
)

func TestHandleRunSettlement(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockSettlementService, *MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "No Mode Selected",
			query:          "",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgSettlementModeRequired,
		},
		{
			name:           "Invalid Round",
			query:          "?round=zero",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid round parameter",
		},
		{
			name:  "Single Round",
			query: "?round=4",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleRound", mock.Anything, 4).Return(&settlement.RoundReport{Round: 4, PredictionsScored: 12}, nil)
				mp.On("InvalidateStandings").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"predictions_scored":12`,
		},
		{
			name:  "Single Round Failure",
			query: "?round=4",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleRound", mock.Anything, 4).Return(nil, errors.New("provider down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "provider down",
		},
		{
			name:  "Round List",
			query: "?rounds=1,2",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleRounds", mock.Anything, []int{1, 2}).Return([]settlement.RoundReport{
					{Round: 1},
					{Round: 2, Error: "no result yet"},
				})
				mp.On("InvalidateStandings").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "no result yet",
		},
		{
			name:  "All Passed",
			query: "?all=true",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleAllPassed", mock.Anything).Return([]settlement.RoundReport{{Round: 1}, {Round: 2}}, nil)
				mp.On("InvalidateStandings").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"round":2`,
		},
		{
			name:  "Auto",
			query: "?auto=true",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleAuto", mock.Anything).Return([]settlement.RoundReport{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockSettlementService{}
			profiles := &MockProfileService{}
			handler := NewSettlementHandler(service, profiles)

			if tt.setupMocks != nil {
				tt.setupMocks(service, profiles)
			}

			req := httptest.NewRequest("POST", "/settlement/run"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.HandleRunSettlement(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleSettleSeason(t *testing.T) {
	service := &MockSettlementService{}
	service.On("SettleSeason", mock.Anything).Return(&settlement.SeasonReport{Season: 2025, PredictionsScored: 8, StandingsKnown: true}, nil)
	profiles := &MockProfileService{}
	profiles.On("InvalidateStandings").Return()
	handler := NewSettlementHandler(service, profiles)

	req := httptest.NewRequest("POST", "/settlement/season", nil)
	rec := httptest.NewRecorder()

	handler.HandleSettleSeason(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"standings_known":true`)
	profiles.AssertCalled(t, "InvalidateStandings")
}

func TestHandleRecomputeAggregates(t *testing.T) {
	service := &MockSettlementService{}
	service.On("RecomputeAggregates", mock.Anything).Return(nil)
	profiles := &MockProfileService{}
	profiles.On("InvalidateStandings").Return()
	handler := NewSettlementHandler(service, profiles)

	req := httptest.NewRequest("POST", "/settlement/recompute", nil)
	rec := httptest.NewRecorder()

	handler.HandleRecomputeAggregates(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), MsgAggregatesRecomputed)
}

func TestHandleSettleBets(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockSettlementService, *MockProfileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Round",
			query:          "",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid round parameter",
		},
		{
			name:  "Bets Settled",
			query: "?round=7",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleBets", mock.Anything, 7).Return(&settlement.RoundReport{Round: 7, BetsSettled: 3}, nil)
				mp.On("InvalidateStandings").Return()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bets_settled":3`,
		},
		{
			name:  "No Result Yet",
			query: "?round=7",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleBets", mock.Anything, 7).Return(&settlement.RoundReport{Round: 7}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"bets_settled":0`,
		},
		{
			name:  "Service Failure",
			query: "?round=7",
			setupMocks: func(ms *MockSettlementService, mp *MockProfileService) {
				ms.On("SettleBets", mock.Anything, 7).Return(nil, errors.New("provider down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "provider down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockSettlementService{}
			profiles := &MockProfileService{}
			if tt.setupMocks != nil {
				tt.setupMocks(service, profiles)
			}
			handler := NewSettlementHandler(service, profiles)

			req := httptest.NewRequest("POST", "/settlement/bets"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.HandleSettleBets(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			service.AssertExpectations(t)
		})
	}
}
