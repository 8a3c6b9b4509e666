package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/premier-league-stats/internal/config"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MemoryStoreImportsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.csv")
	csv := "1;Arsenal;Chelsea;3;1\n2;Chelsea;Arsenal;2;2\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o600))

	cfg := config.Config{
		StoreDriver:   config.StoreMemory,
		CSVPath:       path,
		CSVDelimiter:  ';',
		ImportEnabled: true,
	}
	a, err := Build(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	imported, err := a.Import.Import(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, imported.Matches)
	assert.Equal(t, 2, imported.Teams)

	report, err := a.Statistics.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", report.MostGoals.Team.Name)
	assert.Equal(t, 5, report.MostGoals.Value)
	assert.Equal(t, 1, report.Standings[0].Rank)
}

func TestBuild_MemoryStoreSeededWithoutImport(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreMemory, ImportEnabled: false}
	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	rows, err := a.Statistics.StandingsTable(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}

func TestBuild_UnsupportedStore(t *testing.T) {
	_, err := Build(context.Background(), config.Config{StoreDriver: "redis"}, logging.NewNop())
	require.Error(t, err)
}
