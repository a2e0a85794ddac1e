package adapters

import (
	"strconv"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"go.uber.org/zap"
)

// OpenF1Adapter reads the OpenF1 telemetry API. Every endpoint returns a flat
// JSON array of objects, so flattening is a passthrough into records; the
// query context (session key, year) is already part of the upstream records.
type OpenF1Adapter struct {
	BaseURL string

	fetcher f1data.Fetcher
	logger  *zap.Logger
}

func NewOpenF1Adapter(fetcher f1data.Fetcher, baseURL string, logger *zap.Logger) *OpenF1Adapter {
	if baseURL == "" {
		baseURL = f1data.DefaultOpenF1BaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenF1Adapter{BaseURL: baseURL, fetcher: fetcher, logger: logger}
}

// Sessions returns all sessions of a year.
func (a *OpenF1Adapter) Sessions(year int) f1data.RecordSet {
	return a.fetchArray("/sessions", map[string]string{"year": strconv.Itoa(year)})
}

// Laps returns the lap data of one session. A driverNumber above zero narrows
// the result to that driver; zero fetches every driver.
func (a *OpenF1Adapter) Laps(sessionKey, driverNumber int) f1data.RecordSet {
	query := map[string]string{"session_key": strconv.Itoa(sessionKey)}
	if driverNumber > 0 {
		query["driver_number"] = strconv.Itoa(driverNumber)
	}
	return a.fetchArray("/laps", query)
}

// PitStops returns the pit stop data of one session.
func (a *OpenF1Adapter) PitStops(sessionKey int) f1data.RecordSet {
	return a.fetchArray("/pit", map[string]string{"session_key": strconv.Itoa(sessionKey)})
}

// Drivers returns the driver roster of one session.
func (a *OpenF1Adapter) Drivers(sessionKey int) f1data.RecordSet {
	return a.fetchArray("/drivers", map[string]string{"session_key": strconv.Itoa(sessionKey)})
}

// fetchArray runs one GET and decodes the flat array payload. Transport
// failures and malformed payloads degrade to an empty set; they are logged,
// never raised.
func (a *OpenF1Adapter) fetchArray(path string, query map[string]string) f1data.RecordSet {
	resp, err := a.fetcher.Fetch(&f1data.RequestDescriptor{
		BaseURL: a.BaseURL,
		Path:    path,
		Query:   query,
	})
	if err != nil {
		a.logger.Warn("openf1 fetch failed", zap.String("path", path), zap.Error(err))
		return nil
	}

	var records f1data.RecordSet
	if err := resp.Decode(&records); err != nil {
		a.logger.Warn("openf1 payload is not a record array", zap.String("path", path), zap.Error(err))
		return nil
	}
	a.logger.Info("retrieved records", zap.String("path", path), zap.Int("count", len(records)))
	return records
}
