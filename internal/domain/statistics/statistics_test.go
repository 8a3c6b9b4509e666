package statistics

import (
	"errors"
	"testing"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSeason(t *testing.T, records ...league.Record) *league.Season {
	t.Helper()
	season, err := league.NewSeason(records)
	require.NoError(t, err)
	return season
}

// twoTeamSeason: A beats B 3:1 at home, then draws 2:2 away.
func twoTeamSeason(t *testing.T) *league.Season {
	return buildSeason(t,
		league.Record{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 3, AwayGoals: 1},
		league.Record{Round: 2, HomeTeam: "B", AwayTeam: "A", HomeGoals: 2, AwayGoals: 2},
	)
}

func TestLeaders_TwoTeamSeason(t *testing.T) {
	t.Parallel()

	teams := twoTeamSeason(t).Teams

	tests := []struct {
		name      string
		query     func([]*league.Team) (TeamValue, error)
		wantTeam  string
		wantValue int
	}{
		{name: "most goals", query: MostGoalsScored, wantTeam: "A", wantValue: 5},
		{name: "most away goals", query: MostAwayGoalsScored, wantTeam: "A", wantValue: 2},
		{name: "most home goals", query: MostHomeGoalsScored, wantTeam: "A", wantValue: 3},
		{name: "best goal difference", query: BestGoalDifference, wantTeam: "A", wantValue: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.query(teams)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTeam, got.Team.Name)
			assert.Equal(t, tc.wantValue, got.Value)
		})
	}
}

func TestLeaders_EmptyInput(t *testing.T) {
	t.Parallel()

	queries := map[string]func([]*league.Team) (TeamValue, error){
		"MostGoalsScored":     MostGoalsScored,
		"MostAwayGoalsScored": MostAwayGoalsScored,
		"MostHomeGoalsScored": MostHomeGoalsScored,
		"BestGoalDifference":  BestGoalDifference,
	}
	for name, query := range queries {
		_, err := query(nil)
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("%s: expected ErrEmptyInput, got %v", name, err)
		}
	}
}

func TestLeaders_TieKeepsFirstTeam(t *testing.T) {
	t.Parallel()

	season := buildSeason(t,
		league.Record{Round: 1, HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeGoals: 2, AwayGoals: 2},
	)

	got, err := MostGoalsScored(season.Teams)
	require.NoError(t, err)
	assert.Equal(t, "Arsenal", got.Team.Name)
	assert.Equal(t, 2, got.Value)

	reversed := []*league.Team{season.Teams[1], season.Teams[0]}
	got, err = MostGoalsScored(reversed)
	require.NoError(t, err)
	assert.Equal(t, "Chelsea", got.Team.Name)
}

func TestMostGoalsScored_IsMaximumAndAdditive(t *testing.T) {
	t.Parallel()

	season := buildSeason(t,
		league.Record{Round: 1, HomeTeam: "Leeds", AwayTeam: "Fulham", HomeGoals: 1, AwayGoals: 4},
		league.Record{Round: 1, HomeTeam: "Spurs", AwayTeam: "Wolves", HomeGoals: 0, AwayGoals: 0},
		league.Record{Round: 2, HomeTeam: "Fulham", AwayTeam: "Spurs", HomeGoals: 2, AwayGoals: 3},
		league.Record{Round: 2, HomeTeam: "Wolves", AwayTeam: "Leeds", HomeGoals: 5, AwayGoals: 1},
	)

	best, err := MostGoalsScored(season.Teams)
	require.NoError(t, err)

	for _, team := range season.Teams {
		total, err := MostGoalsScored([]*league.Team{team})
		require.NoError(t, err)
		home, err := MostHomeGoalsScored([]*league.Team{team})
		require.NoError(t, err)
		away, err := MostAwayGoalsScored([]*league.Team{team})
		require.NoError(t, err)

		assert.GreaterOrEqual(t, total.Value, 0)
		assert.Equal(t, home.Value+away.Value, total.Value, "team %s", team.Name)
		assert.LessOrEqual(t, total.Value, best.Value, "team %s", team.Name)
	}
	assert.Equal(t, "Fulham", best.Team.Name)
	assert.Equal(t, 6, best.Value)
}

func TestStandingsTable_TwoTeamSeason(t *testing.T) {
	t.Parallel()

	rows, err := StandingsTable(twoTeamSeason(t).Teams)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	a, b := rows[0], rows[1]
	assert.Equal(t, "A", a.Team.Name)
	assert.Equal(t, StandingRow{
		Team: a.Team, Rank: 1, Played: 2, Won: 1, Drawn: 1, Lost: 0,
		GoalsFor: 5, GoalsAgainst: 3, GoalDifference: 2, Points: 4,
	}, a)
	assert.Equal(t, "B", b.Team.Name)
	assert.Equal(t, StandingRow{
		Team: b.Team, Rank: 2, Played: 2, Won: 0, Drawn: 1, Lost: 1,
		GoalsFor: 3, GoalsAgainst: 5, GoalDifference: -2, Points: 1,
	}, b)
}

func TestStandingsTable_TeamWithoutMatches(t *testing.T) {
	t.Parallel()

	rows, err := StandingsTable([]*league.Team{{Name: "Lonely"}})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Zero(t, rows[0].Played)
	assert.Zero(t, rows[0].Points)
	assert.Zero(t, rows[0].GoalDifference)
}

func TestStandingsTable_Empty(t *testing.T) {
	t.Parallel()

	rows, err := StandingsTable(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStandingsTable_OrderingAndInvariants(t *testing.T) {
	t.Parallel()

	// C and D finish level on points and goal difference; C comes first by name.
	season := buildSeason(t,
		league.Record{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 1, AwayGoals: 0},
		league.Record{Round: 1, HomeTeam: "C", AwayTeam: "D", HomeGoals: 1, AwayGoals: 1},
		league.Record{Round: 2, HomeTeam: "B", AwayTeam: "C", HomeGoals: 0, AwayGoals: 2},
		league.Record{Round: 2, HomeTeam: "D", AwayTeam: "A", HomeGoals: 2, AwayGoals: 0},
		league.Record{Round: 3, HomeTeam: "A", AwayTeam: "C", HomeGoals: 3, AwayGoals: 0},
		league.Record{Round: 3, HomeTeam: "B", AwayTeam: "D", HomeGoals: 3, AwayGoals: 0},
	)

	rows, err := StandingsTable(season.Teams)
	require.NoError(t, err)
	require.Len(t, rows, len(season.Teams))

	seen := make(map[string]bool)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, 3*row.Won+(row.Played-row.Won-row.Lost), row.Points)
		assert.Equal(t, row.GoalsFor-row.GoalsAgainst, row.GoalDifference)
		assert.Equal(t, row.Played-row.Won-row.Lost, row.Drawn)
		assert.False(t, seen[row.Team.Name], "duplicate team %s", row.Team.Name)
		seen[row.Team.Name] = true
		if i > 0 {
			prev := rows[i-1]
			assert.True(t, prev.Points > row.Points ||
				(prev.Points == row.Points && prev.GoalDifference >= row.GoalDifference))
		}
	}

	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Team.Name)
	}
	// A: 6 pts GD +2, C: 4 pts GD -1, D: 4 pts GD -1, B: 3 pts GD 0
	assert.Equal(t, []string{"A", "C", "D", "B"}, names)
}

func TestStandingsTable_StableUnderFullTie(t *testing.T) {
	t.Parallel()

	teams := []*league.Team{{Name: "Zeta"}, {Name: "Alpha"}, {Name: "Mid"}}
	rows, err := StandingsTable(teams)
	require.NoError(t, err)

	for i, row := range rows {
		assert.Same(t, teams[i], row.Team)
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []StandingRow{{Points: 9}, {Points: 3}}
	out := Rank(in)

	assert.Zero(t, in[0].Rank)
	assert.Equal(t, 1, out[0].Rank)
	assert.Equal(t, 2, out[1].Rank)
}

func TestAverageStatistics(t *testing.T) {
	t.Parallel()

	// A: two home matches, one away match.
	season := buildSeason(t,
		league.Record{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 3, AwayGoals: 1},
		league.Record{Round: 2, HomeTeam: "B", AwayTeam: "A", HomeGoals: 2, AwayGoals: 2},
		league.Record{Round: 3, HomeTeam: "A", AwayTeam: "B", HomeGoals: 1, AwayGoals: 0},
	)

	rows, err := AverageStatistics(season.Teams)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	a := rows[0]
	assert.Equal(t, "A", a.Team.Name)
	assert.InDelta(t, 2.0, a.ScoredHome, 1e-9)
	assert.InDelta(t, 2.0, a.ScoredAway, 1e-9)
	assert.InDelta(t, 2.0, a.ScoredTotal, 1e-9)
	assert.InDelta(t, 0.5, a.ConcededHome, 1e-9)
	assert.InDelta(t, 2.0, a.ConcededAway, 1e-9)
	assert.InDelta(t, 1.25, a.ConcededTotal, 1e-9)

	b := rows[1]
	assert.Equal(t, "B", b.Team.Name)
	assert.InDelta(t, 2.0, b.ScoredHome, 1e-9)
	assert.InDelta(t, 0.5, b.ScoredAway, 1e-9)
	// mean of venue means, not 3 goals over 3 matches
	assert.InDelta(t, 1.25, b.ScoredTotal, 1e-9)
	assert.InDelta(t, 2.0, b.ConcededHome, 1e-9)
	assert.InDelta(t, 2.0, b.ConcededAway, 1e-9)
	assert.InDelta(t, 2.0, b.ConcededTotal, 1e-9)
}

func TestAverageStatistics_Undefined(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		records []league.Record
		want    string
	}{
		{
			name:    "zero away matches",
			records: []league.Record{{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 1}},
			want:    `"A" has no away matches`,
		},
		{
			// C sorts after A and B, so A and B pass before C fails.
			name: "zero home matches",
			records: []league.Record{
				{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 1},
				{Round: 2, HomeTeam: "B", AwayTeam: "A", HomeGoals: 1},
				{Round: 3, HomeTeam: "A", AwayTeam: "C", HomeGoals: 2},
				{Round: 4, HomeTeam: "B", AwayTeam: "C", AwayGoals: 1},
			},
			want: `"C" has no home matches`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			season := buildSeason(t, tc.records...)
			rows, err := AverageStatistics(season.Teams)
			require.ErrorIs(t, err, ErrDivisionUndefined)
			assert.Nil(t, rows)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestAverageStatistics_TiesKeepInputOrder(t *testing.T) {
	t.Parallel()

	// Both teams average 1.5 scored; input order is A then B.
	season := buildSeason(t,
		league.Record{Round: 1, HomeTeam: "A", AwayTeam: "B", HomeGoals: 2, AwayGoals: 1},
		league.Record{Round: 2, HomeTeam: "B", AwayTeam: "A", HomeGoals: 2, AwayGoals: 1},
	)

	rows, err := AverageStatistics(season.Teams)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.InDelta(t, rows[0].ScoredTotal, rows[1].ScoredTotal, 1e-9)
	assert.Equal(t, "A", rows[0].Team.Name)
	assert.Equal(t, "B", rows[1].Team.Name)

	reversed, err := AverageStatistics([]*league.Team{season.Teams[1], season.Teams[0]})
	require.NoError(t, err)
	assert.Equal(t, "B", reversed[0].Team.Name)
	assert.Equal(t, "A", reversed[1].Team.Name)
}

func TestAverageStatistics_Empty(t *testing.T) {
	t.Parallel()

	rows, err := AverageStatistics(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestQueries_FailFastOnBrokenTeam(t *testing.T) {
	t.Parallel()

	host := &league.Team{Name: "Host"}
	guest := &league.Team{Name: "Guest"}
	m := &league.Match{Round: 1, Home: host, Away: guest, HomeGoals: -1, AwayGoals: 0}
	host.HomeMatches = append(host.HomeMatches, m)
	guest.AwayMatches = append(guest.AwayMatches, m)

	intruder := &league.Team{Name: "Intruder", HomeMatches: []*league.Match{m}}

	lonelyHost := &league.Team{Name: "LonelyHost"}
	lonelyHost.HomeMatches = []*league.Match{{Round: 1, Home: lonelyHost, HomeGoals: 4}}

	lonelyGuest := &league.Team{Name: "LonelyGuest"}
	lonelyGuest.AwayMatches = []*league.Match{{Round: 1, Away: lonelyGuest, AwayGoals: 2}}

	self := &league.Team{Name: "Self"}
	selfMatch := &league.Match{Round: 1, Home: self, Away: self, HomeGoals: 2, AwayGoals: 1}
	self.HomeMatches = []*league.Match{selfMatch}
	self.AwayMatches = []*league.Match{selfMatch}

	for _, teams := range [][]*league.Team{{host, guest}, {intruder}, {nil}, {lonelyHost}, {lonelyGuest}, {self}} {
		_, err := MostGoalsScored(teams)
		assert.ErrorIs(t, err, league.ErrMalformedRecord)
		_, err = StandingsTable(teams)
		assert.ErrorIs(t, err, league.ErrMalformedRecord)
		_, err = AverageStatistics(teams)
		assert.ErrorIs(t, err, league.ErrMalformedRecord)
	}
}

func TestQueries_DoNotMutateInput(t *testing.T) {
	t.Parallel()

	season := twoTeamSeason(t)
	before := season.Records()
	order := []*league.Team{season.Teams[0], season.Teams[1]}

	_, _ = StandingsTable(season.Teams)
	_, _ = AverageStatistics(season.Teams)
	_, _ = BestGoalDifference(season.Teams)

	assert.Equal(t, before, season.Records())
	assert.Equal(t, order, season.Teams)
}
