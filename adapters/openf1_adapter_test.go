package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"github.com/HailieNashData/dsci510-fall2025-final-project/mock"
)

func TestSessionsPassthrough(t *testing.T) {
	fetcher := &mock.Fetcher{Responses: []*f1data.RawResponse{mock.JSONResponse(`[
	  {"session_key": 9157, "session_name": "Race", "year": 2024, "circuit_short_name": "Sakhir"},
	  {"session_key": 9158, "session_name": "Practice 1", "year": 2024, "circuit_short_name": "Sakhir"}
	]`)}}
	a := NewOpenF1Adapter(fetcher, "", nil)

	records := a.Sessions(2024)
	require.Len(t, records, 2)
	assert.Equal(t, float64(9157), records[0]["session_key"])
	assert.Equal(t, "Race", records[0]["session_name"])

	require.Len(t, fetcher.Calls, 1)
	desc := fetcher.Calls[0]
	assert.Equal(t, f1data.DefaultOpenF1BaseURL, desc.BaseURL)
	assert.Equal(t, "/sessions", desc.Path)
	assert.Equal(t, map[string]string{"year": "2024"}, desc.Query)
}

func TestLapsDriverFilter(t *testing.T) {
	fetcher := &mock.Fetcher{Responses: []*f1data.RawResponse{
		mock.JSONResponse(`[]`),
		mock.JSONResponse(`[]`),
	}}
	a := NewOpenF1Adapter(fetcher, "", nil)

	a.Laps(9157, 0)
	a.Laps(9157, 44)

	require.Len(t, fetcher.Calls, 2)
	assert.Equal(t, map[string]string{"session_key": "9157"}, fetcher.Calls[0].Query)
	assert.Equal(t, map[string]string{"session_key": "9157", "driver_number": "44"}, fetcher.Calls[1].Query)
}

func TestPitStopsRequestShape(t *testing.T) {
	fetcher := &mock.Fetcher{Responses: []*f1data.RawResponse{mock.JSONResponse(`[]`)}}
	a := NewOpenF1Adapter(fetcher, "", nil)

	a.PitStops(9157)

	require.Len(t, fetcher.Calls, 1)
	assert.Equal(t, "/pit", fetcher.Calls[0].Path)
	assert.Equal(t, map[string]string{"session_key": "9157"}, fetcher.Calls[0].Query)
}

func TestDriversRequestShape(t *testing.T) {
	fetcher := &mock.Fetcher{Responses: []*f1data.RawResponse{mock.JSONResponse(`[
	  {"driver_number": 1, "full_name": "Max VERSTAPPEN", "session_key": 9157}
	]`)}}
	a := NewOpenF1Adapter(fetcher, "", nil)

	records := a.Drivers(9157)
	require.Len(t, records, 1)
	assert.Equal(t, "Max VERSTAPPEN", records[0]["full_name"])
	assert.Equal(t, "/drivers", fetcher.Calls[0].Path)
}

func TestOpenF1TransportFailureYieldsEmptySet(t *testing.T) {
	a := NewOpenF1Adapter(&mock.Fetcher{}, "", nil)
	assert.True(t, a.Sessions(2024).Empty())
	assert.True(t, a.Laps(9157, 0).Empty())
}

func TestOpenF1MalformedPayloadYieldsEmptySet(t *testing.T) {
	fetcher := &mock.Fetcher{Responses: []*f1data.RawResponse{mock.JSONResponse(`{"detail": "rate limit exceeded"}`)}}
	a := NewOpenF1Adapter(fetcher, "", nil)
	assert.True(t, a.Sessions(2024).Empty())
}
