package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/riskibarqy/premier-league-stats/internal/domain/statistics"
	"github.com/riskibarqy/premier-league-stats/internal/platform/logging"
)

// Report bundles every statistic computed from one snapshot.
type Report struct {
	Teams              int
	Matches            int
	MostGoals          statistics.TeamValue
	MostAwayGoals      statistics.TeamValue
	MostHomeGoals      statistics.TeamValue
	BestGoalDifference statistics.TeamValue
	Averages           []statistics.AverageRow
	Standings          []statistics.StandingRow
}

type StatisticsService struct {
	repo   league.Repository
	logger *logging.Logger
}

func NewStatisticsService(repo league.Repository, logger *logging.Logger) *StatisticsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatisticsService{
		repo:   repo,
		logger: logger,
	}
}

func (s *StatisticsService) MostGoalsScored(ctx context.Context) (statistics.TeamValue, error) {
	return s.leader(ctx, "MostGoalsScored", statistics.MostGoalsScored)
}

func (s *StatisticsService) MostAwayGoalsScored(ctx context.Context) (statistics.TeamValue, error) {
	return s.leader(ctx, "MostAwayGoalsScored", statistics.MostAwayGoalsScored)
}

func (s *StatisticsService) MostHomeGoalsScored(ctx context.Context) (statistics.TeamValue, error) {
	return s.leader(ctx, "MostHomeGoalsScored", statistics.MostHomeGoalsScored)
}

func (s *StatisticsService) BestGoalDifference(ctx context.Context) (statistics.TeamValue, error) {
	return s.leader(ctx, "BestGoalDifference", statistics.BestGoalDifference)
}

func (s *StatisticsService) AverageStatistics(ctx context.Context) ([]statistics.AverageRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.AverageStatistics")
	defer span.End()

	season, err := s.loadSeason(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := statistics.AverageStatistics(season.Teams)
	if err != nil {
		return nil, mapStatisticsErr("average statistics", err)
	}
	return rows, nil
}

func (s *StatisticsService) StandingsTable(ctx context.Context) ([]statistics.StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.StandingsTable")
	defer span.End()

	season, err := s.loadSeason(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := statistics.StandingsTable(season.Teams)
	if err != nil {
		return nil, mapStatisticsErr("standings table", err)
	}
	return rows, nil
}

// Report loads one snapshot and computes every section from it. Any
// failing section fails the report.
func (s *StatisticsService) Report(ctx context.Context) (Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService.Report")
	defer span.End()

	season, err := s.loadSeason(ctx)
	if err != nil {
		return Report{}, err
	}
	teams := season.Teams

	out := Report{
		Teams:   len(teams),
		Matches: len(season.Matches),
	}

	leaders := []struct {
		name  string
		query func([]*league.Team) (statistics.TeamValue, error)
		dst   *statistics.TeamValue
	}{
		{name: "most goals scored", query: statistics.MostGoalsScored, dst: &out.MostGoals},
		{name: "most away goals scored", query: statistics.MostAwayGoalsScored, dst: &out.MostAwayGoals},
		{name: "most home goals scored", query: statistics.MostHomeGoalsScored, dst: &out.MostHomeGoals},
		{name: "best goal difference", query: statistics.BestGoalDifference, dst: &out.BestGoalDifference},
	}
	for _, item := range leaders {
		value, err := item.query(teams)
		if err != nil {
			return Report{}, mapStatisticsErr(item.name, err)
		}
		*item.dst = value
	}

	if out.Averages, err = statistics.AverageStatistics(teams); err != nil {
		return Report{}, mapStatisticsErr("average statistics", err)
	}
	if out.Standings, err = statistics.StandingsTable(teams); err != nil {
		return Report{}, mapStatisticsErr("standings table", err)
	}

	s.logger.InfoContext(ctx, "report generated", "teams", out.Teams, "matches", out.Matches)
	return out, nil
}

func (s *StatisticsService) leader(
	ctx context.Context,
	name string,
	query func([]*league.Team) (statistics.TeamValue, error),
) (statistics.TeamValue, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsService."+name)
	defer span.End()

	season, err := s.loadSeason(ctx)
	if err != nil {
		return statistics.TeamValue{}, err
	}
	value, err := query(season.Teams)
	if err != nil {
		return statistics.TeamValue{}, mapStatisticsErr(name, err)
	}
	return value, nil
}

func (s *StatisticsService) loadSeason(ctx context.Context) (*league.Season, error) {
	records, err := s.repo.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list records: %w", ErrDependencyUnavailable, err)
	}
	season, err := league.NewSeason(records)
	if err != nil {
		return nil, fmt.Errorf("%w: build season: %w", ErrInvalidInput, err)
	}
	s.logger.DebugContext(ctx, "season snapshot loaded", "teams", len(season.Teams), "matches", len(season.Matches))
	return season, nil
}

func mapStatisticsErr(op string, err error) error {
	switch {
	case errors.Is(err, statistics.ErrEmptyInput):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	case errors.Is(err, statistics.ErrDivisionUndefined), errors.Is(err, league.ErrMalformedRecord):
		return fmt.Errorf("%w: %s: %w", ErrInvalidInput, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
