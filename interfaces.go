package f1data

// Fetcher is the transport seam. The real implementation is RequestExecutor;
// tests substitute a scripted double.
type Fetcher interface {
	Fetch(desc *RequestDescriptor) (*RawResponse, error)
}

// TelemetrySource serves the session/lap/pit/driver telemetry endpoints.
type TelemetrySource interface {
	Sessions(year int) RecordSet
	Laps(sessionKey, driverNumber int) RecordSet
	PitStops(sessionKey int) RecordSet
	Drivers(sessionKey int) RecordSet
}

// ResultsSource serves the historical results endpoints.
type ResultsSource interface {
	RaceResults(year int) RecordSet
	QualifyingResults(year int) RecordSet
	DriverStandings(year int) RecordSet
}

// Sink persists one record set under a dataset name. Implementations create
// their output location on demand and overwrite previous runs.
type Sink interface {
	Save(records RecordSet, name string) error
}
