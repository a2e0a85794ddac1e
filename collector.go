// collector.go
// ------------
// The Collector is the entry point of the pipeline. It wires the two source
// adapters, the pacing limiter, and a persistence sink, and drives the
// season-level orchestration in season.go.
//
// Every collaborator presents a total interface: adapters return empty
// record sets on failure and the orchestrator logs persistence errors, so a
// single endpoint's outage never aborts a season run.
package f1data

import "go.uber.org/zap"

type Collector struct {
	telemetry TelemetrySource
	results   ResultsSource
	sink      Sink
	pacer     *Pacer

	sampleSessions int
	logger         *zap.Logger
}

// NewCollector assembles a Collector from already-constructed sources and a
// sink. cfg supplies the sampling cap and the inter-session pause; a nil cfg
// uses the defaults.
func NewCollector(telemetry TelemetrySource, results ResultsSource, sink Sink, cfg *Config, logger *zap.Logger) *Collector {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	sample := cfg.SampleSessions
	if sample <= 0 {
		sample = 3
	}
	return &Collector{
		telemetry:      telemetry,
		results:        results,
		sink:           sink,
		pacer:          NewPacer(cfg.SessionPause),
		sampleSessions: sample,
		logger:         logger,
	}
}
