package f1data

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTelemetry struct {
	sessions RecordSet
	lapCalls []int
	pitCalls []int
}

func (s *stubTelemetry) Sessions(year int) RecordSet { return s.sessions }

func (s *stubTelemetry) Laps(sessionKey, driverNumber int) RecordSet {
	s.lapCalls = append(s.lapCalls, sessionKey)
	return RecordSet{{"session_key": sessionKey, "lap_number": float64(1)}}
}

func (s *stubTelemetry) PitStops(sessionKey int) RecordSet {
	s.pitCalls = append(s.pitCalls, sessionKey)
	return RecordSet{{"session_key": sessionKey, "pit_duration": float64(22.5)}}
}

func (s *stubTelemetry) Drivers(sessionKey int) RecordSet { return nil }

type stubResults struct {
	race, quali, standings RecordSet
}

func (s *stubResults) RaceResults(year int) RecordSet       { return s.race }
func (s *stubResults) QualifyingResults(year int) RecordSet { return s.quali }
func (s *stubResults) DriverStandings(year int) RecordSet   { return s.standings }

type recordingSink struct {
	saved map[string]int
	err   error
}

func (s *recordingSink) Save(rs RecordSet, name string) error {
	if s.err != nil {
		return s.err
	}
	if s.saved == nil {
		s.saved = make(map[string]int)
	}
	s.saved[name] = len(rs)
	return nil
}

// seasonSessions builds a session list with the given number of "Race"
// sessions (keys 100, 101, ...) interleaved with other session types.
func seasonSessions(races int) RecordSet {
	rs := RecordSet{{"session_key": float64(90), "session_name": "Practice 1"}}
	for i := 0; i < races; i++ {
		rs = append(rs,
			Record{"session_key": float64(95 + i), "session_name": "Qualifying"},
			Record{"session_key": float64(100 + i), "session_name": "Race"},
		)
	}
	return rs
}

func newTestCollector(tel *stubTelemetry, res *stubResults, snk Sink) *Collector {
	cfg := DefaultConfig()
	cfg.SessionPause = 0
	return NewCollector(tel, res, snk, cfg, nil)
}

func TestCollectSeasonSamplesThreeRaceSessions(t *testing.T) {
	tel := &stubTelemetry{sessions: seasonSessions(10)}
	res := &stubResults{
		race:      RecordSet{{"driver_id": "verstappen"}},
		quali:     RecordSet{{"driver_id": "verstappen"}},
		standings: RecordSet{{"driver_id": "verstappen"}},
	}
	snk := &recordingSink{}

	report := newTestCollector(tel, res, snk).CollectSeason(2024)

	assert.Equal(t, []int{100, 101, 102}, tel.lapCalls)
	assert.Equal(t, []int{100, 101, 102}, tel.pitCalls)

	for _, name := range []string{
		"race_results_2024", "qualifying_2024", "standings_2024", "sessions_2024",
		"laps_2024_session_100", "laps_2024_session_101", "laps_2024_session_102",
		"pit_stops_2024_session_100", "pit_stops_2024_session_101", "pit_stops_2024_session_102",
	} {
		assert.Contains(t, snk.saved, name)
	}
	assert.Len(t, report.Datasets, 10)
	assert.Equal(t, 2024, report.Year)
}

func TestCollectSeasonFewerRaceSessionsThanSample(t *testing.T) {
	tel := &stubTelemetry{sessions: seasonSessions(2)}
	snk := &recordingSink{}

	newTestCollector(tel, &stubResults{}, snk).CollectSeason(2024)

	assert.Equal(t, []int{100, 101}, tel.lapCalls)
}

func TestCollectSeasonResultsFailureDoesNotBlockTelemetry(t *testing.T) {
	tel := &stubTelemetry{sessions: seasonSessions(3)}
	snk := &recordingSink{}

	// All Ergast endpoints degraded to empty sets.
	newTestCollector(tel, &stubResults{}, snk).CollectSeason(2024)

	assert.NotContains(t, snk.saved, "race_results_2024")
	assert.Contains(t, snk.saved, "sessions_2024")
	assert.Len(t, tel.lapCalls, 3)
}

func TestCollectSeasonEmptySessionsStopsTelemetry(t *testing.T) {
	tel := &stubTelemetry{}
	res := &stubResults{race: RecordSet{{"driver_id": "hamilton"}}}
	snk := &recordingSink{}

	report := newTestCollector(tel, res, snk).CollectSeason(2023)

	assert.Empty(t, tel.lapCalls)
	assert.Contains(t, snk.saved, "race_results_2023")
	assert.NotContains(t, snk.saved, "sessions_2023")
	assert.Len(t, report.Datasets, 1)
}

func TestCollectSeasonPersistFailureContinues(t *testing.T) {
	tel := &stubTelemetry{sessions: seasonSessions(3)}
	res := &stubResults{race: RecordSet{{"driver_id": "norris"}}}
	snk := &recordingSink{err: errors.New("disk full")}

	report := newTestCollector(tel, res, snk).CollectSeason(2024)

	// Nothing persisted, nothing reported, no panic, full traversal anyway.
	assert.Empty(t, report.Datasets)
	assert.Len(t, tel.lapCalls, 3)
}

func TestSeasonReportRender(t *testing.T) {
	report := &SeasonReport{Year: 2024}
	report.add("race_results_2024", 440)
	report.add("sessions_2024", 120)

	var buf bytes.Buffer
	report.Render(&buf)

	out := buf.String()
	assert.Contains(t, out, "Season 2024")
	assert.Contains(t, out, "race_results_2024")
	assert.Contains(t, out, fmt.Sprint(440))
}

func TestRaceSessionKeys(t *testing.T) {
	keys := raceSessionKeys(RecordSet{
		{"session_key": float64(1), "session_name": "Practice 1"},
		{"session_key": float64(2), "session_name": "Race"},
		{"session_name": "Race"},              // no key, skipped
		{"session_key": "oops", "session_name": "Race"}, // unusable key, skipped
		{"session_key": float64(5), "session_name": "Race"},
	})
	require.Equal(t, []int{2, 5}, keys)
}
