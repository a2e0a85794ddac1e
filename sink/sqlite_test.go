package sink

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f1data.db")
	s := NewSQLiteSink(path, nil)
	records := sampleRecords()
	require.NoError(t, s.Save(records, "race_results_2024"))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM race_results_2024`).Scan(&count))
	assert.Equal(t, len(records), count)

	var driverID string
	var fastest sql.NullString
	require.NoError(t, db.QueryRow(
		`SELECT driver_id, fastest_lap_time FROM race_results_2024 WHERE driver_id = 'perez'`,
	).Scan(&driverID, &fastest))
	assert.Equal(t, "perez", driverID)
	assert.False(t, fastest.Valid, "nil field persists as NULL")
}

func TestSQLiteOverwritesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f1data.db")
	s := NewSQLiteSink(path, nil)

	require.NoError(t, s.Save(sampleRecords(), "laps_2024_session_9157"))
	require.NoError(t, s.Save(sampleRecords()[:1], "laps_2024_session_9157"))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM laps_2024_session_9157`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSQLiteSanitizesTableName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f1data.db")
	s := NewSQLiteSink(path, nil)
	require.NoError(t, s.Save(sampleRecords(), "race-results 2024"))

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM race_results_2024`).Scan(&count))
	assert.Equal(t, len(sampleRecords()), count)
}
