package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eod_backend/internal/platform/externalapi/marketstack/dto"
)

func TestIngestCmd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "eod.db"))
	t.Setenv("RUN_MIGRATIONS", "true")

	body := `{
		"pagination": {"limit": 100, "offset": 0, "count": 3, "total": 3},
		"data": [
			{"symbol": "AAPL", "exchange": "XNAS", "date": "2024-01-05T00:00:00+0000", "close": 181.18},
			{"symbol": "AAPL", "exchange": "XNAS", "date": "not a date", "close": 1},
			{"symbol": "MSFT", "exchange": "XNAS", "date": "2024-01-05T00:00:00+0000", "close": 367.75}
		]
	}`
	path := filepath.Join(dir, "eod.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	out, err := runCmd(t, "ingest", path)

	require.NoError(t, err)
	assert.Equal(t, "ingested 2 records from 1 files", out)
}

func TestIngestCmd_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_SQLITE_PATH", filepath.Join(dir, "eod.db"))
	t.Setenv("RUN_MIGRATIONS", "true")

	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data": []}`), 0o600))

	_, err := runCmd(t, "ingest", path)

	assert.ErrorIs(t, err, dto.ErrMalformedResponse)
}

func TestIngestCmd_RequiresFile(t *testing.T) {
	_, err := runCmd(t, "ingest")

	assert.Error(t, err)
}
