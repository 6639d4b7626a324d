package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

func TestHandlePlaceBet(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockBettingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name: "Unknown Bet Type",
			reqBody: PlaceBetRequest{
				UserID: "user-1", RaceID: 4, Type: "coin_flip", Selection: "44", Stake: 100,
			},
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid bet type",
		},
		{
			name: "Insufficient Coins",
			reqBody: PlaceBetRequest{
				UserID: "user-1", RaceID: 4, Type: "driver_dnf", Selection: "44", Stake: 100,
			},
			setupMocks: func(ms *MockBettingService) {
				ms.On("PlaceBet", mock.Anything, "user-1", 4, domain.BetDriverDNF, "44", int64(100)).Return(nil, domain.ErrInsufficientCoins)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInsufficientCoinsError,
		},
		{
			name: "Race Locked",
			reqBody: PlaceBetRequest{
				UserID: "user-1", RaceID: 4, Type: "pole_wins", Selection: "1", Stake: 50,
			},
			setupMocks: func(ms *MockBettingService) {
				ms.On("PlaceBet", mock.Anything, "user-1", 4, domain.BetPoleWins, "1", int64(50)).Return(nil, domain.ErrPredictionsLocked)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgPredictionsLockedError,
		},
		{
			name: "Success",
			reqBody: PlaceBetRequest{
				UserID: "user-1", RaceID: 4, Type: "head_to_head", Selection: "44>63", Stake: 200,
			},
			setupMocks: func(ms *MockBettingService) {
				ms.On("PlaceBet", mock.Anything, "user-1", 4, domain.BetHeadToHead, "44>63", int64(200)).Return(&domain.Bet{
					ID:        uuid.MustParse("00000000-0000-0000-0000-000000000001"),
					UserID:    "user-1",
					RaceID:    4,
					Type:      domain.BetHeadToHead,
					Selection: "44>63",
					Stake:     200,
					Odds:      1.9,
					Status:    domain.BetStatusPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"status":"pending"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockBettingService{}
			handler := NewBetHandler(service)

			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			var body []byte
			if s, ok := tt.reqBody.(string); ok && s == "invalid json" {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest("POST", "/bet", bytes.NewBuffer(body))
			rec := httptest.NewRecorder()

			handler.HandlePlaceBet(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleGetBet(t *testing.T) {
	validUUID := uuid.New()
	tests := []struct {
		name           string
		queryID        string
		setupMocks     func(*MockBettingService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing ID",
			queryID:        "",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing id query parameter",
		},
		{
			name:           "Invalid ID",
			queryID:        "not-a-uuid",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidBetID,
		},
		{
			name:    "Not Found",
			queryID: validUUID.String(),
			setupMocks: func(ms *MockBettingService) {
				ms.On("GetBet", mock.Anything, validUUID).Return(nil, domain.ErrBetNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgBetNotFoundError,
		},
		{
			name:    "Success",
			queryID: validUUID.String(),
			setupMocks: func(ms *MockBettingService) {
				ms.On("GetBet", mock.Anything, validUUID).Return(&domain.Bet{ID: validUUID, Status: domain.BetStatusWon, Winnings: 400}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"winnings":400`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockBettingService{}
			handler := NewBetHandler(service)

			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			req := httptest.NewRequest("GET", "/bet?id="+tt.queryID, nil)
			rec := httptest.NewRecorder()

			handler.HandleGetBet(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleListUserBets(t *testing.T) {
	service := &MockBettingService{}
	service.On("ListUserBets", mock.Anything, "user-1").Return([]domain.Bet{
		{Type: domain.BetDriverDNF, Status: domain.BetStatusLost},
	}, nil)
	handler := NewBetHandler(service)

	req := httptest.NewRequest("GET", "/bets?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	handler.HandleListUserBets(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"type":"driver_dnf"`)
}
