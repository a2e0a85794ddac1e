// season.go
// ---------
// Season-level orchestration: the fixed sequence of adapter calls that
// collects one year of data. Results, qualifying, and standings are
// independent; sessions gate the telemetry sampling. The run always
// completes, partial failures are logged and surface only as missing
// datasets.
package f1data

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

const openF1Source = "openf1"

// DatasetCount is one line of a season report: dataset name and how many
// records were persisted under it.
type DatasetCount struct {
	Name    string
	Records int
}

// SeasonReport summarizes what one CollectSeason run persisted.
type SeasonReport struct {
	Year     int
	Datasets []DatasetCount
}

func (r *SeasonReport) add(name string, records int) {
	r.Datasets = append(r.Datasets, DatasetCount{Name: name, Records: records})
}

// Render writes the report as a console table.
func (r *SeasonReport) Render(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Season %d", r.Year))
	t.AppendHeader(table.Row{"Dataset", "Records"})
	for _, d := range r.Datasets {
		t.AppendRow(table.Row{d.Name, d.Records})
	}
	t.Render()
}

// CollectSeason collects and persists all data for one season:
//
//  1. Race results, qualifying results, and driver standings, each persisted
//     when non-empty. A failure in one does not block the others.
//  2. The year's sessions, persisted when non-empty.
//  3. Laps and pit stops for the first sampleSessions sessions named "Race",
//     with a pacing pause between consecutive sessions.
func (c *Collector) CollectSeason(year int) *SeasonReport {
	report := &SeasonReport{Year: year}
	c.logger.Info("collecting season", zap.Int("year", year))

	if rs := c.results.RaceResults(year); !rs.Empty() {
		c.persist(report, rs, fmt.Sprintf("race_results_%d", year))
	}
	if rs := c.results.QualifyingResults(year); !rs.Empty() {
		c.persist(report, rs, fmt.Sprintf("qualifying_%d", year))
	}
	if rs := c.results.DriverStandings(year); !rs.Empty() {
		c.persist(report, rs, fmt.Sprintf("standings_%d", year))
	}

	sessions := c.telemetry.Sessions(year)
	if sessions.Empty() {
		c.logger.Info("season collection finished", zap.Int("year", year), zap.Int("datasets", len(report.Datasets)))
		return report
	}
	c.persist(report, sessions, fmt.Sprintf("sessions_%d", year))

	raceKeys := raceSessionKeys(sessions)
	c.logger.Info("race sessions found", zap.Int("year", year), zap.Int("count", len(raceKeys)))

	for i, key := range raceKeys {
		if i >= c.sampleSessions {
			break
		}
		c.pacer.Wait(openF1Source)
		c.logger.Info("collecting session telemetry", zap.Int("session_key", key))

		if laps := c.telemetry.Laps(key, 0); !laps.Empty() {
			c.persist(report, laps, fmt.Sprintf("laps_%d_session_%d", year, key))
		}
		if pits := c.telemetry.PitStops(key); !pits.Empty() {
			c.persist(report, pits, fmt.Sprintf("pit_stops_%d_session_%d", year, key))
		}
	}

	c.logger.Info("season collection finished", zap.Int("year", year), zap.Int("datasets", len(report.Datasets)))
	return report
}

func (c *Collector) persist(report *SeasonReport, rs RecordSet, name string) {
	if err := c.sink.Save(rs, name); err != nil {
		c.logger.Error("persist failed", zap.String("dataset", name), zap.Error(err))
		return
	}
	report.add(name, len(rs))
}

// raceSessionKeys extracts the session_key of every session whose
// session_name equals "Race", preserving upstream order. Sessions without a
// usable key are skipped.
func raceSessionKeys(sessions RecordSet) []int {
	var keys []int
	for _, rec := range sessions {
		if name, ok := rec["session_name"].(string); !ok || name != "Race" {
			continue
		}
		if key, ok := sessionKey(rec); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// sessionKey coerces the session_key field, which arrives as a JSON number
// and decodes to float64.
func sessionKey(rec Record) (int, bool) {
	switch v := rec["session_key"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
