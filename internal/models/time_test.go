package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeMarshalJSON(t *testing.T) {
	dt := LocalDateTime{Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)}

	data, err := json.Marshal(dt)
	require.NoError(t, err)
	require.Equal(t, `"2024-05-01T09:30:00"`, string(data))
}

func TestLocalDateTimeUnmarshalJSON(t *testing.T) {
	var dt LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T09:30:00"`), &dt))
	require.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local), dt.Time)
}

func TestLocalDateTimeUnmarshalRFC3339Fallback(t *testing.T) {
	var dt LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01T09:30:00Z"`), &dt))
	require.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC), dt.Time)
}

func TestLocalDateTimeUnmarshalEmptyAndNull(t *testing.T) {
	var dt LocalDateTime
	require.NoError(t, json.Unmarshal([]byte(`""`), &dt))
	require.True(t, dt.IsZero())

	dt = LocalDateTime{Time: time.Now()}
	require.NoError(t, json.Unmarshal([]byte(`null`), &dt))
	require.True(t, dt.IsZero())
}

func TestLocalDateTimeUnmarshalInvalid(t *testing.T) {
	var dt LocalDateTime
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}

func TestLocalDateTimeJSONRoundTrip(t *testing.T) {
	entry := JournalEntry{
		Title: "Day 1",
		Date:  LocalDateTime{Time: time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local)},
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded JournalEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.True(t, entry.Date.Equal(decoded.Date.Time))
}
