package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/domain"
	"github.com/f1tipp/F1Tipp_Go/internal/livetiming"
)

func TestHandleLiveSnapshot(t *testing.T) {
	service := &MockLiveService{}
	service.On("LiveSnapshot", mock.Anything, livetiming.LatestSessionKey).Return(&livetiming.Snapshot{
		SessionKey: livetiming.LatestSessionKey,
		Order:      []domain.DriverID{4, 1, 81},
	}, nil)
	handler := NewLiveHandler(service)

	req := httptest.NewRequest("GET", "/live/snapshot", nil)
	rec := httptest.NewRecorder()

	handler.HandleLiveSnapshot(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order":[4,1,81]`)
}

func TestHandleLiveSnapshotProviderDown(t *testing.T) {
	service := &MockLiveService{}
	service.On("LiveSnapshot", mock.Anything, "9999").Return(nil, errors.New("provider down"))
	handler := NewLiveHandler(service)

	req := httptest.NewRequest("GET", "/live/snapshot?session_key=9999", nil)
	rec := httptest.NewRecorder()

	handler.HandleLiveSnapshot(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandleProjection(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMocks     func(*MockLiveService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing RaceID",
			query:          "",
			setupMocks:     nil,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Missing race_id query parameter",
		},
		{
			name:  "Success",
			query: "?race_id=7",
			setupMocks: func(ms *MockLiveService) {
				ms.On("ProjectPoints", mock.Anything, 7, livetiming.LatestSessionKey).Return(&livetiming.Projection{
					Snapshot: &livetiming.Snapshot{Order: []domain.DriverID{4, 1}},
					Scores:   []livetiming.ProjectedScore{{UserID: "user-1", Points: 12}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"points":12`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockLiveService{}
			handler := NewLiveHandler(service)

			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			req := httptest.NewRequest("GET", "/live/projection"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.HandleProjection(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}
