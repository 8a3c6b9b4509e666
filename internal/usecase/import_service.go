package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
)

// RecordSource supplies the raw results of one season.
type RecordSource interface {
	Read(ctx context.Context) ([]league.Record, error)
}

type ImportResult struct {
	Matches int
	Teams   int
}

type ImportService struct {
	source RecordSource
	repo   league.Repository
	logger *logging.Logger
}

func NewImportService(source RecordSource, repo league.Repository, logger *logging.Logger) *ImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		source: source,
		repo:   repo,
		logger: logger,
	}
}

// Import replaces the stored season with whatever the source holds now.
// An empty source clears the store and only logs a warning.
func (s *ImportService) Import(ctx context.Context) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.Import")
	defer span.End()

	s.logger.InfoContext(ctx, "reading matches from source")
	records, err := s.source.Read(ctx)
	if err != nil {
		if errors.Is(err, league.ErrMalformedRecord) {
			return ImportResult{}, fmt.Errorf("%w: read records: %w", ErrInvalidInput, err)
		}
		return ImportResult{}, fmt.Errorf("%w: read records: %w", ErrDependencyUnavailable, err)
	}

	season, err := league.NewSeason(records)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: build season: %w", ErrInvalidInput, err)
	}

	if len(season.Matches) == 0 {
		s.logger.WarnContext(ctx, "no matches were read")
	} else {
		s.logger.DebugContext(ctx, "matches read", "matches", len(season.Matches), "teams", len(season.Teams))
	}

	if err := s.repo.ReplaceAll(ctx, season.Records()); err != nil {
		return ImportResult{}, fmt.Errorf("%w: store records: %w", ErrDependencyUnavailable, err)
	}

	s.logger.InfoContext(ctx, "matches stored", "matches", len(season.Matches), "teams", len(season.Teams))
	return ImportResult{
		Matches: len(season.Matches),
		Teams:   len(season.Teams),
	}, nil
}
