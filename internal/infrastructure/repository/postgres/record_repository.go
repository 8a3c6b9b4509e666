package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	qb "github.com/riskibarqy/premier-league-stats/internal/platform/querybuilder"
)

// postgres caps a statement at 65535 bind parameters.
const insertChunkSize = 1000

type RecordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) ReplaceAll(ctx context.Context, records []league.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace records: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"matches", "teams"} {
		query, args, err := qb.DeleteFrom(table).ToSQL()
		if err != nil {
			return fmt.Errorf("build clear %s query: %w", table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	teamIDs, err := insertTeams(ctx, tx, teamNames(records))
	if err != nil {
		return err
	}

	for _, chunk := range chunkRecords(records, insertChunkSize) {
		query, args, err := buildInsertMatchesQuery(chunk, teamIDs)
		if err != nil {
			return fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) || isForeignKeyViolation(err) {
				return fmt.Errorf("insert matches: %w: %v", league.ErrMalformedRecord, err)
			}
			return fmt.Errorf("insert matches: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace records tx: %w", err)
	}
	return nil
}

func (r *RecordRepository) ListRecords(ctx context.Context) ([]league.Record, error) {
	query, args, err := buildListRecordsQuery()
	if err != nil {
		return nil, fmt.Errorf("build list records query: %w", err)
	}

	var rows []recordRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}

	out := make([]league.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, league.Record{
			Round:     row.Round,
			HomeTeam:  row.HomeTeam,
			AwayTeam:  row.AwayTeam,
			HomeGoals: row.HomeGoals,
			AwayGoals: row.AwayGoals,
		})
	}
	return out, nil
}

func insertTeams(ctx context.Context, tx *sqlx.Tx, names []string) (map[string]int64, error) {
	ids := make(map[string]int64, len(names))
	if len(names) == 0 {
		return ids, nil
	}

	builder := qb.InsertInto("teams").Columns("name").Suffix("RETURNING id, name, created_at")
	for _, name := range names {
		builder.Values(name)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build insert teams query: %w", err)
	}

	var rows []teamTableModel
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("insert teams: %w: %v", league.ErrMalformedRecord, err)
		}
		return nil, fmt.Errorf("insert teams: %w", err)
	}
	for _, row := range rows {
		ids[row.Name] = row.ID
	}
	return ids, nil
}

func buildInsertMatchesQuery(records []league.Record, teamIDs map[string]int64) (string, []any, error) {
	builder := qb.InsertInto("matches").
		Columns("round", "home_team_id", "away_team_id", "home_goals", "away_goals")
	for _, rec := range records {
		model, err := toMatchInsertModel(rec, teamIDs)
		if err != nil {
			return "", nil, err
		}
		builder.Values(model.Round, model.HomeTeamID, model.AwayTeamID, model.HomeGoals, model.AwayGoals)
	}
	return builder.ToSQL()
}

func buildListRecordsQuery() (string, []any, error) {
	return qb.Select(
		"m.round",
		"h.name AS home_team",
		"a.name AS away_team",
		"m.home_goals",
		"m.away_goals",
	).From("matches m JOIN teams h ON h.id = m.home_team_id JOIN teams a ON a.id = m.away_team_id").
		OrderBy("m.id").
		ToSQL()
}

func toMatchInsertModel(rec league.Record, teamIDs map[string]int64) (matchInsertModel, error) {
	rec = rec.Normalize()
	homeID, ok := teamIDs[rec.HomeTeam]
	if !ok {
		return matchInsertModel{}, fmt.Errorf("%w: unresolved home team %q", league.ErrMalformedRecord, rec.HomeTeam)
	}
	awayID, ok := teamIDs[rec.AwayTeam]
	if !ok {
		return matchInsertModel{}, fmt.Errorf("%w: unresolved away team %q", league.ErrMalformedRecord, rec.AwayTeam)
	}
	return matchInsertModel{
		Round:      rec.Round,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeGoals:  rec.HomeGoals,
		AwayGoals:  rec.AwayGoals,
	}, nil
}

// teamNames returns the distinct team names of records, sorted.
func teamNames(records []league.Record) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0)
	for _, rec := range records {
		rec = rec.Normalize()
		for _, name := range []string{rec.HomeTeam, rec.AwayTeam} {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func chunkRecords(records []league.Record, size int) [][]league.Record {
	if size <= 0 {
		size = len(records)
	}
	var out [][]league.Record
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		out = append(out, records[start:end])
	}
	return out
}
