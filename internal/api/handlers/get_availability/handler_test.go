package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/slotservice"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	lastReq *getAvailableSlots.Request
}

func (uc *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	uc.lastReq = req
	if uc.err != nil {
		return nil, uc.err
	}
	return uc.resp, nil
}

func mustDateTime(t *testing.T, value string) types.DateTime {
	t.Helper()
	dt, err := types.ParseDateTime(value)
	require.NoError(t, err)
	return dt
}

func TestHandle_ReturnsSlots(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		WeekStart: time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC),
		Slots: []domain.Slot{
			{Start: mustDateTime(t, "2024-06-17T09:00:00"), End: mustDateTime(t, "2024-06-17T09:10:00")},
			{Start: mustDateTime(t, "2024-06-17T09:10:00"), End: mustDateTime(t, "2024-06-17T09:20:00")},
		},
	}}
	h := NewHandler(uc, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2024-06-18T14:09:00Z", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body []AvailableSlot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "2024-06-17T09:00:00", body[0].Start.String())

	require.NotNil(t, uc.lastReq)
	assert.Equal(t, time.Date(2024, time.June, 18, 14, 9, 0, 0, time.UTC), uc.lastReq.Date.UTC())
}

func TestHandle_EmptyWeekIsEmptyArray(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		WeekStart: time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC),
		Slots:     []domain.Slot{},
	}}
	h := NewHandler(uc, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandle_UnparseableDateFallsBackToNow(t *testing.T) {
	uc := &stubUseCase{resp: &getAvailableSlots.Response{Slots: []domain.Slot{}}}
	h := NewHandler(uc, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=yesterday", nil)
	rec := httptest.NewRecorder()

	before := time.Now()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.lastReq)
	assert.False(t, uc.lastReq.Date.Before(before))
}

func TestHandle_NotConfigured(t *testing.T) {
	uc := &stubUseCase{err: slotservice.ErrNotConfigured}
	h := NewHandler(uc, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "could not authorize to slot management API", body.Message)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &stubUseCase{err: getAvailableSlots.ErrInternal}
	h := NewHandler(uc, testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestParseRequestedDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
		ok   bool
	}{
		{"2024-06-18T14:09:00Z", time.Date(2024, time.June, 18, 14, 9, 0, 0, time.UTC), true},
		{"2024-06-18T14:09:00", time.Date(2024, time.June, 18, 14, 9, 0, 0, time.UTC), true},
		{"2024-06-18", time.Date(2024, time.June, 18, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"18/06/2024", time.Time{}, false},
	}

	for _, tc := range tests {
		got, ok := ParseRequestedDate(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			assert.True(t, got.Equal(tc.want), "raw=%q: got %s", tc.raw, got)
		}
	}
}
