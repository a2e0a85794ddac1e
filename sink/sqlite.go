package sink

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	f1data "github.com/HailieNashData/dsci510-fall2025-final-project"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var tableNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// SQLiteSink writes every dataset into its own table of a single database
// file. Columns get TEXT affinity; SQLite coerces numerics on read, which is
// enough for downstream analysis tools. Saving a dataset drops and recreates
// its table, matching the overwrite semantics of the file sinks.
type SQLiteSink struct {
	Path   string
	logger *zap.Logger
}

func NewSQLiteSink(path string, logger *zap.Logger) *SQLiteSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SQLiteSink{Path: path, logger: logger}
}

func (s *SQLiteSink) Save(records f1data.RecordSet, name string) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating directory %s", dir)
		}
	}

	db, err := sql.Open("sqlite3", s.Path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", s.Path)
	}
	defer db.Close()

	table := tableNameSanitizer.ReplaceAllString(name, "_")
	cols := records.Columns()

	if _, err := db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS "%s"`, table)); err != nil {
		return errors.Wrapf(err, "dropping table %s", table)
	}
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = fmt.Sprintf(`"%s" TEXT`, col)
	}
	if _, err := db.Exec(fmt.Sprintf(`CREATE TABLE "%s" (%s)`, table, strings.Join(defs, ", "))); err != nil {
		return errors.Wrapf(err, "creating table %s", table)
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = fmt.Sprintf(`"%s"`, col)
	}
	stmt, err := tx.Prepare(fmt.Sprintf(`INSERT INTO "%s" (%s) VALUES (%s)`,
		table, strings.Join(quoted, ", "), placeholders))
	if err != nil {
		tx.Rollback()
		return errors.Wrapf(err, "preparing insert for %s", table)
	}
	defer stmt.Close()

	args := make([]interface{}, len(cols))
	for _, rec := range records {
		for i, col := range cols {
			if rec[col] == nil {
				args[i] = nil
			} else {
				args[i] = formatValue(rec[col])
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "inserting into %s", table)
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "committing %s", table)
	}

	s.logger.Info("saved records", zap.String("table", table), zap.Int("count", len(records)))
	return nil
}
