package adapters

import (
	"fmt"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"go.uber.org/zap"
)

// ErgastAdapter reads the Ergast historical results API and flattens its
// MRData race nesting into one record per driver entry. Missing optional
// fields become nil values; a missing driverId drops that one record with an
// error log and the run continues.
type ErgastAdapter struct {
	BaseURL string

	fetcher f1data.Fetcher
	logger  *zap.Logger
}

func NewErgastAdapter(fetcher f1data.Fetcher, baseURL string, logger *zap.Logger) *ErgastAdapter {
	if baseURL == "" {
		baseURL = f1data.DefaultErgastBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErgastAdapter{BaseURL: baseURL, fetcher: fetcher, logger: logger}
}

// RaceResults returns one record per driver per race of the season,
// combining race-level fields with the driver's result entry.
func (a *ErgastAdapter) RaceResults(year int) f1data.RecordSet {
	races, ok := a.fetchRaceTable(year, "results")
	if !ok {
		return nil
	}

	var out f1data.RecordSet
	for _, race := range races {
		for _, res := range race.Results {
			if res.Driver.DriverID == "" {
				a.logger.Error("result entry missing driverId",
					zap.Int("year", year), zap.String("race", race.RaceName))
				continue
			}
			rec := f1data.Record{
				"season":           year,
				"round":            race.Round,
				"race_name":        race.RaceName,
				"circuit":          race.Circuit.CircuitName,
				"date":             race.Date,
				"position":         nullable(res.Position),
				"driver_id":        res.Driver.DriverID,
				"driver_name":      res.Driver.fullName(),
				"driver_number":    nullable(res.Number),
				"team":             res.Constructor.Name,
				"grid":             nullable(res.Grid),
				"points":           nullable(res.Points),
				"status":           nullable(res.Status),
				"fastest_lap_rank": nil,
				"fastest_lap_time": nil,
			}
			if fl := res.FastestLap; fl != nil {
				rec["fastest_lap_rank"] = nullable(fl.Rank)
				if fl.Time != nil {
					rec["fastest_lap_time"] = nullable(fl.Time.Time)
				}
			}
			out = append(out, rec)
		}
	}
	a.logger.Info("retrieved race results", zap.Int("year", year), zap.Int("count", len(out)))
	return out
}

// QualifyingResults returns one record per driver per race with the Q1/Q2/Q3
// time strings, which are nullable upstream.
func (a *ErgastAdapter) QualifyingResults(year int) f1data.RecordSet {
	races, ok := a.fetchRaceTable(year, "qualifying")
	if !ok {
		return nil
	}

	var out f1data.RecordSet
	for _, race := range races {
		for _, res := range race.QualifyingResults {
			if res.Driver.DriverID == "" {
				a.logger.Error("qualifying entry missing driverId",
					zap.Int("year", year), zap.String("race", race.RaceName))
				continue
			}
			out = append(out, f1data.Record{
				"season":        year,
				"round":         race.Round,
				"race_name":     race.RaceName,
				"position":      nullable(res.Position),
				"driver_id":     res.Driver.DriverID,
				"driver_name":   res.Driver.fullName(),
				"driver_number": nullable(res.Number),
				"team":          res.Constructor.Name,
				"Q1":            nullable(res.Q1),
				"Q2":            nullable(res.Q2),
				"Q3":            nullable(res.Q3),
			})
		}
	}
	a.logger.Info("retrieved qualifying results", zap.Int("year", year), zap.Int("count", len(out)))
	return out
}

// DriverStandings returns one record per driver per listed round. The team
// is the driver's first listed constructor, which is how the upstream
// reports a driver's current constructor; mid-season team changes therefore
// show a single team per round entry.
func (a *ErgastAdapter) DriverStandings(year int) f1data.RecordSet {
	resp, err := a.fetch(year, "driverStandings")
	if err != nil {
		a.logger.Warn("ergast fetch failed",
			zap.String("resource", "driverStandings"), zap.Int("year", year), zap.Error(err))
		return nil
	}

	var envelope mrDataEnvelope
	if err := resp.Decode(&envelope); err != nil {
		a.logger.Warn("ergast payload is not valid JSON",
			zap.String("resource", "driverStandings"), zap.Int("year", year), zap.Error(err))
		return nil
	}
	if envelope.MRData == nil || envelope.MRData.StandingsTable == nil {
		a.logger.Warn("ergast payload missing standings table", zap.Int("year", year))
		return nil
	}

	var out f1data.RecordSet
	for _, list := range envelope.MRData.StandingsTable.StandingsLists {
		for _, entry := range list.DriverStandings {
			if entry.Driver.DriverID == "" {
				a.logger.Error("standing entry missing driverId",
					zap.Int("year", year), zap.String("round", list.Round))
				continue
			}
			rec := f1data.Record{
				"season":      year,
				"round":       nullable(list.Round),
				"position":    nullable(entry.Position),
				"driver_id":   entry.Driver.DriverID,
				"driver_name": entry.Driver.fullName(),
				"team":        nil,
				"points":      nullable(entry.Points),
				"wins":        nullable(entry.Wins),
			}
			if len(entry.Constructors) > 0 {
				rec["team"] = entry.Constructors[0].Name
			}
			out = append(out, rec)
		}
	}
	a.logger.Info("retrieved driver standings", zap.Int("year", year), zap.Int("count", len(out)))
	return out
}

func (a *ErgastAdapter) fetch(year int, resource string) (*f1data.RawResponse, error) {
	return a.fetcher.Fetch(&f1data.RequestDescriptor{
		BaseURL: a.BaseURL,
		Path:    fmt.Sprintf("/%d/%s.json", year, resource),
		Query:   map[string]string{"limit": "1000"},
	})
}

// fetchRaceTable fetches a race-nested resource and unwraps the MRData race
// table. Any failure along the way degrades to (nil, false).
func (a *ErgastAdapter) fetchRaceTable(year int, resource string) ([]ergastRace, bool) {
	resp, err := a.fetch(year, resource)
	if err != nil {
		a.logger.Warn("ergast fetch failed",
			zap.String("resource", resource), zap.Int("year", year), zap.Error(err))
		return nil, false
	}

	var envelope mrDataEnvelope
	if err := resp.Decode(&envelope); err != nil {
		a.logger.Warn("ergast payload is not valid JSON",
			zap.String("resource", resource), zap.Int("year", year), zap.Error(err))
		return nil, false
	}
	if envelope.MRData == nil || envelope.MRData.RaceTable == nil {
		a.logger.Warn("ergast payload missing race table",
			zap.String("resource", resource), zap.Int("year", year))
		return nil, false
	}
	return envelope.MRData.RaceTable.Races, true
}

// nullable maps an absent upstream string to nil so missing optional fields
// persist as nulls instead of empty strings.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
