package statistics

import "github.com/riskibarqy/premier-league-stats/internal/domain/league"

// TeamValue is the winner of a best-of query and the metric it won with.
type TeamValue struct {
	Team  *league.Team
	Value int
}

// MostGoalsScored returns the team with the most goals of its own, home and away.
func MostGoalsScored(teams []*league.Team) (TeamValue, error) {
	return best(teams, tally.scored)
}

// MostAwayGoalsScored only counts goals scored as the visiting side.
func MostAwayGoalsScored(teams []*league.Team) (TeamValue, error) {
	return best(teams, func(t tally) int { return t.awayScored })
}

// MostHomeGoalsScored only counts goals scored as the host.
func MostHomeGoalsScored(teams []*league.Team) (TeamValue, error) {
	return best(teams, func(t tally) int { return t.homeScored })
}

// BestGoalDifference returns the team with the largest scored minus conceded.
func BestGoalDifference(teams []*league.Team) (TeamValue, error) {
	return best(teams, func(t tally) int { return t.scored() - t.conceded() })
}

// best keeps the first team in input order on ties.
func best(teams []*league.Team, metric func(tally) int) (TeamValue, error) {
	if len(teams) == 0 {
		return TeamValue{}, ErrEmptyInput
	}
	tallies, err := tallyAll(teams)
	if err != nil {
		return TeamValue{}, err
	}

	out := TeamValue{Team: teams[0], Value: metric(tallies[0])}
	for i := 1; i < len(teams); i++ {
		if v := metric(tallies[i]); v > out.Value {
			out = TeamValue{Team: teams[i], Value: v}
		}
	}
	return out, nil
}
