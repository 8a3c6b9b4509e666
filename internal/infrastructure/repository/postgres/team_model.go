package postgres

import "time"

type teamTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type matchInsertModel struct {
	Round      int   `db:"round"`
	HomeTeamID int64 `db:"home_team_id"`
	AwayTeamID int64 `db:"away_team_id"`
	HomeGoals  int   `db:"home_goals"`
	AwayGoals  int   `db:"away_goals"`
}

// recordRowModel is a match joined with both team names.
type recordRowModel struct {
	Round     int    `db:"round"`
	HomeTeam  string `db:"home_team"`
	AwayTeam  string `db:"away_team"`
	HomeGoals int    `db:"home_goals"`
	AwayGoals int    `db:"away_goals"`
}
