package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime("2024-06-17T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 17, 9, 0, 0, 0, time.UTC), dt.Time)

	// RFC 3339 с явной зоной нормализуется к UTC
	dt, err = ParseDateTime("2024-06-17T11:00:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.June, 17, 9, 0, 0, 0, time.UTC), dt.Time)

	_, err = ParseDateTime("17/06/2024")
	assert.Error(t, err)
}

func TestDateTime_JSONRoundTrip(t *testing.T) {
	dt, err := ParseDateTime("2024-06-17T09:00:00")
	require.NoError(t, err)

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-17T09:00:00"`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, dt.Equal(decoded))
}

func TestDateTime_UnmarshalNull(t *testing.T) {
	var dt DateTime
	require.NoError(t, json.Unmarshal([]byte("null"), &dt))
	assert.True(t, dt.IsZero())
}

func TestNewDateTime_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("CET", 2*60*60)
	local := time.Date(2024, time.June, 17, 11, 0, 0, 0, loc)

	dt := NewDateTime(local)

	assert.Equal(t, "2024-06-17T09:00:00", dt.String())
}
