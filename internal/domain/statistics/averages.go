package statistics

import (
	"cmp"
	"slices"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
)

// AverageRow holds per-venue goal averages for one team.
//
// The totals are the mean of the two venue averages, not goals divided by
// matches played. With unequal home and away counts the two differ.
type AverageRow struct {
	Team          *league.Team
	ScoredHome    float64
	ScoredAway    float64
	ScoredTotal   float64
	ConcededHome  float64
	ConcededAway  float64
	ConcededTotal float64
}

// AverageStatistics returns one row per team ordered by ScoredTotal, highest
// first. A team without home or without away matches fails the whole call
// with ErrDivisionUndefined.
func AverageStatistics(teams []*league.Team) ([]AverageRow, error) {
	tallies, err := tallyAll(teams)
	if err != nil {
		return nil, err
	}

	rows := make([]AverageRow, 0, len(teams))
	for i, t := range teams {
		tl := tallies[i]
		if tl.homePlayed == 0 {
			return nil, crerr.Wrapf(ErrDivisionUndefined, "team %q has no home matches", t.Name)
		}
		if tl.awayPlayed == 0 {
			return nil, crerr.Wrapf(ErrDivisionUndefined, "team %q has no away matches", t.Name)
		}

		row := AverageRow{
			Team:         t,
			ScoredHome:   float64(tl.homeScored) / float64(tl.homePlayed),
			ScoredAway:   float64(tl.awayScored) / float64(tl.awayPlayed),
			ConcededHome: float64(tl.homeConceded) / float64(tl.homePlayed),
			ConcededAway: float64(tl.awayConceded) / float64(tl.awayPlayed),
		}
		row.ScoredTotal = (row.ScoredHome + row.ScoredAway) / 2
		row.ConcededTotal = (row.ConcededHome + row.ConcededAway) / 2
		rows = append(rows, row)
	}

	slices.SortStableFunc(rows, func(a, b AverageRow) int {
		return cmp.Compare(b.ScoredTotal, a.ScoredTotal)
	})
	return rows, nil
}
