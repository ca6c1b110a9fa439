package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-scheduler/internal/delivery/dto"
	"salon-scheduler/internal/repository"
	"salon-scheduler/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWaitlistUsecase struct {
	result *dto.WaitlistResponse
	err    error
}

func (s *stubWaitlistUsecase) GetWaitlist(ctx context.Context) (*dto.WaitlistResponse, error) {
	return s.result, s.err
}

func TestGetWaitlistEnvelope(t *testing.T) {
	h := NewWaitlistHandler(&stubWaitlistUsecase{result: &dto.WaitlistResponse{
		Upcoming: []dto.WaitlistEntryResponse{{ID: "b-1", ClientName: "Mia Wong"}},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waitlist", nil)
	rec := httptest.NewRecorder()
	h.GetWaitlist(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Data)
}

func TestGetWaitlistUpstreamErrorPassesMessageThrough(t *testing.T) {
	h := NewWaitlistHandler(&stubWaitlistUsecase{err: &repository.UpstreamError{
		StatusCode: http.StatusServiceUnavailable,
		Message:    "backend is down for maintenance",
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waitlist", nil)
	rec := httptest.NewRecorder()
	h.GetWaitlist(rec, req)

	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "backend is down for maintenance", body.Message)
}

func TestGetWaitlistGenericError(t *testing.T) {
	h := NewWaitlistHandler(&stubWaitlistUsecase{err: assert.AnError})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/waitlist", nil)
	rec := httptest.NewRecorder()
	h.GetWaitlist(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
