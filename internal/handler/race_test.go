package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/f1tipp/F1Tipp_Go/internal/calendar"
	"github.com/f1tipp/F1Tipp_Go/internal/domain"
)

func TestHandleSyncCalendar(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockCalendarService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Provider Failure",
			setupMocks: func(ms *MockCalendarService) {
				ms.On("SyncSeason", mock.Anything).Return(nil, errors.New("provider down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "provider down",
		},
		{
			name: "Success",
			setupMocks: func(ms *MockCalendarService) {
				ms.On("SyncSeason", mock.Anything).Return(&calendar.SyncReport{Season: 2025, Synced: 24}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"synced":24`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &MockCalendarService{}
			handler := NewRaceHandler(service)

			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			req := httptest.NewRequest("POST", "/races/sync", nil)
			rec := httptest.NewRecorder()

			handler.HandleSyncCalendar(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleGetRace(t *testing.T) {
	service := &MockCalendarService{}
	service.On("GetRace", mock.Anything, 4).Return(&domain.Race{ID: 4, Round: 4, Name: "Miami Grand Prix"}, nil)
	handler := NewRaceHandler(service)

	req := httptest.NewRequest("GET", "/race?id=4", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetRace(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Miami Grand Prix")
}

func TestHandleGetRaceNotFound(t *testing.T) {
	service := &MockCalendarService{}
	service.On("GetRace", mock.Anything, 99).Return(nil, domain.ErrRaceNotFound)
	handler := NewRaceHandler(service)

	req := httptest.NewRequest("GET", "/race?id=99", nil)
	rec := httptest.NewRecorder()

	handler.HandleGetRace(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgRaceNotFoundError)
}

func TestHandleNextRace(t *testing.T) {
	service := &MockCalendarService{}
	service.On("NextRace", mock.Anything).Return(&domain.Race{ID: 5, Round: 5, Date: time.Now().Add(72 * time.Hour)}, nil)
	handler := NewRaceHandler(service)

	req := httptest.NewRequest("GET", "/race/next", nil)
	rec := httptest.NewRecorder()

	handler.HandleNextRace(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"round":5`)
}

func TestHandleNextRaceSeasonOver(t *testing.T) {
	service := &MockCalendarService{}
	service.On("NextRace", mock.Anything).Return(nil, nil)
	handler := NewRaceHandler(service)

	req := httptest.NewRequest("GET", "/race/next", nil)
	rec := httptest.NewRecorder()

	handler.HandleNextRace(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), ErrMsgNoUpcomingRace)
}
