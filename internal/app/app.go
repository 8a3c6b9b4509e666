package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/premier-league-stats/internal/config"
	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/riskibarqy/premier-league-stats/internal/infrastructure/csvsource"
	"github.com/riskibarqy/premier-league-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/premier-league-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
	"github.com/riskibarqy/premier-league-stats/internal/platform/migration"
	"github.com/riskibarqy/premier-league-stats/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// App holds the wired use cases of one report run.
type App struct {
	Import     *usecase.ImportService
	Statistics *usecase.StatisticsService

	closers []func() error
}

// Build wires the store selected by cfg, the CSV source and the use cases.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	out := &App{}
	repo, err := out.buildRepository(ctx, cfg, logger)
	if err != nil {
		_ = out.Close()
		return nil, err
	}

	source := csvsource.NewReader(csvsource.Config{
		Path:      cfg.CSVPath,
		Delimiter: cfg.CSVDelimiter,
		HasHeader: cfg.CSVHasHeader,
	})

	out.Import = usecase.NewImportService(source, repo, logger)
	out.Statistics = usecase.NewStatisticsService(repo, logger)
	return out, nil
}

// Close releases every resource opened by Build.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) buildRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (league.Repository, error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)

		if cfg.DBAutoMigrate {
			if err := runMigrations(cfg, logger); err != nil {
				return nil, err
			}
		}
		logger.Info("using postgres store", "db_name", dbNameFromURL(cfg.DBURL))
		return postgres.NewRecordRepository(db), nil
	case config.StoreMemory, "":
		var seed []league.Record
		if !cfg.ImportEnabled {
			seed = memory.SeedRecords()
		}
		logger.Info("using memory store", "seeded_matches", len(seed))
		return memory.NewRecordRepository(seed), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func runMigrations(cfg config.Config, logger *logging.Logger) error {
	m, sourceURL, err := migration.New(cfg.MigrationsDir, normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return err
	}
	defer func() {
		if err := migration.Close(m); err != nil {
			logger.Warn("close migrator", "error", err)
		}
	}()

	applied, err := migration.Up(m)
	if err != nil {
		return err
	}
	logger.Info("migrations checked", "source", sourceURL, "applied", applied)
	return nil
}
