package statistics

import (
	"slices"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// StandingRow is one derived line of the league table.
type StandingRow struct {
	Team           *league.Team
	Rank           int
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}

// StandingsTable ranks teams by points, then goal difference. Rows still
// level after that keep their input order and get consecutive ranks.
func StandingsTable(teams []*league.Team) ([]StandingRow, error) {
	tallies, err := tallyAll(teams)
	if err != nil {
		return nil, err
	}

	rows := make([]StandingRow, 0, len(teams))
	for i, t := range teams {
		tl := tallies[i]
		rows = append(rows, StandingRow{
			Team:           t,
			Played:         tl.played(),
			Won:            tl.won,
			Drawn:          tl.drawn(),
			Lost:           tl.lost,
			GoalsFor:       tl.scored(),
			GoalsAgainst:   tl.conceded(),
			GoalDifference: tl.scored() - tl.conceded(),
			Points:         tl.won*pointsPerWin + tl.drawn()*pointsPerDraw,
		})
	}

	slices.SortStableFunc(rows, compareStanding)
	return Rank(rows), nil
}

func compareStanding(a, b StandingRow) int {
	if a.Points != b.Points {
		return b.Points - a.Points
	}
	return b.GoalDifference - a.GoalDifference
}

// Rank returns a copy of sorted rows with Rank set to the 1-based position.
func Rank(sorted []StandingRow) []StandingRow {
	out := make([]StandingRow, len(sorted))
	for i, row := range sorted {
		row.Rank = i + 1
		out[i] = row
	}
	return out
}
