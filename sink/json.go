package sink

import (
	"encoding/json"
	"os"
	"path/filepath"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// JSONSink writes each record set as <dir>/<name>.json: an indented array of
// objects, nulls preserved.
type JSONSink struct {
	Dir    string
	logger *zap.Logger
}

func NewJSONSink(dir string, logger *zap.Logger) *JSONSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JSONSink{Dir: dir, logger: logger}
}

func (s *JSONSink) Save(records f1data.RecordSet, name string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", s.Dir)
	}
	path := filepath.Join(s.Dir, name+".json")

	// An empty set still writes a valid empty array.
	if records == nil {
		records = f1data.RecordSet{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	s.logger.Info("saved records", zap.String("path", path), zap.Int("count", len(records)))
	return nil
}
