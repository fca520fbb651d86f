package slotservice

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const availabilityBody = `{
    "Facility": {
        "FacilityId": "90c9f71c-685f-48e7-a6d5-7898775209ce",
        "Name": "Las Palmeras",
        "Address": "Plaza de la independencia 36, 38006 Santa Cruz de Tenerife"
    },
    "SlotDurationMinutes": 10,
    "Friday": {
        "WorkPeriod": {
            "StartHour": 8,
            "EndHour": 16,
            "LunchStartHour": 13,
            "LunchEndHour": 14
        },
        "BusySlots": [
            {"Start": "2024-06-21T10:30:00", "End": "2024-06-21T10:40:00"}
        ]
    },
    "Monday": {
        "WorkPeriod": {
            "StartHour": 9,
            "EndHour": 17,
            "LunchStartHour": 13,
            "LunchEndHour": 14
        },
        "BusySlots": []
    }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(
		Config{
			BaseURL:          srv.URL,
			AvailabilityPath: "/availability/GetWeeklyAvailability/%s",
			TakeSlotPath:     "/availability/TakeSlot",
			Username:         "techuser",
			Password:         "secretpassWord",
		},
		5*time.Second,
		nopLogger{},
	)

	return client, srv
}

func TestGetWeeklyAvailability_HappyPath(t *testing.T) {
	var gotPath string
	var gotUser, gotPass string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, availabilityBody)
	})

	weekStart := time.Date(2024, time.June, 17, 0, 0, 0, 0, time.UTC)

	availability, err := client.GetWeeklyAvailability(context.Background(), weekStart)
	require.NoError(t, err)

	assert.Equal(t, "/availability/GetWeeklyAvailability/20240617", gotPath)
	assert.Equal(t, "techuser", gotUser)
	assert.Equal(t, "secretpassWord", gotPass)

	assert.Equal(t, "90c9f71c-685f-48e7-a6d5-7898775209ce", availability.Facility.FacilityID)
	assert.Equal(t, 10, availability.SlotDurationMinutes)

	// Порядок дней сохраняется как в документе, а не по календарю
	require.Len(t, availability.Days, 2)
	assert.Equal(t, "Friday", availability.Days[0].Name)
	assert.Equal(t, "Monday", availability.Days[1].Name)

	friday := availability.Days[0].Schedule
	require.NotNil(t, friday.WorkPeriod)
	assert.Equal(t, 8, friday.WorkPeriod.StartHour)
	require.Len(t, friday.BusySlots, 1)
	assert.Equal(t, "2024-06-21T10:30:00", friday.BusySlots[0].Start.String())
}

func TestGetWeeklyAvailability_UpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad week", http.StatusBadRequest)
	})

	_, err := client.GetWeeklyAvailability(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetWeeklyAvailability_EmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := client.GetWeeklyAvailability(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetWeeklyAvailability_MalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"Facility": [1, 2`)
	})

	_, err := client.GetWeeklyAvailability(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetWeeklyAvailability_NotConfigured(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	t.Cleanup(srv.Close)

	client := NewClient(
		Config{BaseURL: srv.URL, AvailabilityPath: "/availability/GetWeeklyAvailability/%s"},
		5*time.Second,
		nopLogger{},
	)

	_, err := client.GetWeeklyAvailability(context.Background(), time.Now())

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, requests, "request must not leave the process without credentials")
}

func TestReserveSlot_PostsPayload(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	})

	start, err := types.ParseDateTime("2024-06-17T09:00:00")
	require.NoError(t, err)
	end, err := types.ParseDateTime("2024-06-17T09:10:00")
	require.NoError(t, err)

	payload := &ReservationPayload{
		FacilityID: "90c9f71c-685f-48e7-a6d5-7898775209ce",
		Start:      start,
		End:        end,
		Comments:   "someTestComments",
		Patient: ReservationPatient{
			Name:       "John",
			SecondName: "Connor",
			Email:      "john.connor@gmail.com",
			Phone:      "000111222",
		},
	}

	status, err := client.ReserveSlot(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "/availability/TakeSlot", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "2024-06-17T09:00:00", gotBody["Start"])
	assert.Equal(t, "John", gotBody["Patient"].(map[string]interface{})["Name"])
}

func TestReserveSlot_NonSuccessStatusIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slot already taken", http.StatusBadRequest)
	})

	status, err := client.ReserveSlot(context.Background(), &ReservationPayload{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestReserveSlot_TransportFailure(t *testing.T) {
	client, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.ReserveSlot(context.Background(), &ReservationPayload{})

	assert.ErrorIs(t, err, ErrUnavailable)
}
