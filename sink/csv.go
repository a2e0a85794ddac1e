package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// CSVSink writes each record set as <dir>/<name>.csv: a header row from the
// record-set column union followed by one row per record, no index column.
type CSVSink struct {
	Dir    string
	logger *zap.Logger
}

func NewCSVSink(dir string, logger *zap.Logger) *CSVSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CSVSink{Dir: dir, logger: logger}
}

func (s *CSVSink) Save(records f1data.RecordSet, name string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", s.Dir)
	}
	path := filepath.Join(s.Dir, name+".csv")

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := records.Columns()
	if err := w.Write(cols); err != nil {
		return errors.Wrapf(err, "writing header of %s", path)
	}
	row := make([]string, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			row[i] = formatValue(rec[col])
		}
		if err := w.Write(row); err != nil {
			return errors.Wrapf(err, "writing row of %s", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrapf(err, "flushing %s", path)
	}

	s.logger.Info("saved records", zap.String("path", path), zap.Int("count", len(records)))
	return nil
}
