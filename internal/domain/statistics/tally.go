package statistics

import (
	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/sourcegraph/conc/iter"
)

// tally holds the per-team sums every query is derived from.
type tally struct {
	homePlayed   int
	awayPlayed   int
	homeScored   int
	homeConceded int
	awayScored   int
	awayConceded int
	won          int
	lost         int
}

func (t tally) played() int   { return t.homePlayed + t.awayPlayed }
func (t tally) scored() int   { return t.homeScored + t.awayScored }
func (t tally) conceded() int { return t.homeConceded + t.awayConceded }
func (t tally) drawn() int    { return t.played() - t.won - t.lost }

func tallyTeam(t *league.Team) tally {
	var out tally
	for _, m := range t.HomeMatches {
		out.homePlayed++
		out.homeScored += m.HomeGoals
		out.homeConceded += m.AwayGoals
		switch {
		case m.HomeGoals > m.AwayGoals:
			out.won++
		case m.HomeGoals < m.AwayGoals:
			out.lost++
		}
	}
	for _, m := range t.AwayMatches {
		out.awayPlayed++
		out.awayScored += m.AwayGoals
		out.awayConceded += m.HomeGoals
		switch {
		case m.AwayGoals > m.HomeGoals:
			out.won++
		case m.AwayGoals < m.HomeGoals:
			out.lost++
		}
	}
	return out
}

// tallyAll validates every team, then sums each one independently.
// The returned slice is index-aligned with teams.
func tallyAll(teams []*league.Team) ([]tally, error) {
	for _, t := range teams {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return iter.Map(teams, func(t **league.Team) tally {
		return tallyTeam(*t)
	}), nil
}
