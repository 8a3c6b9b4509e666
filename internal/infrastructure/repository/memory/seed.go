package memory

import "github.com/riskibarqy/premier-league-stats/internal/domain/league"

// SeedRecords is a four-team double round robin used for local runs without a CSV.
func SeedRecords() []league.Record {
	return []league.Record{
		{Round: 1, HomeTeam: "Arsenal", AwayTeam: "Liverpool", HomeGoals: 1, AwayGoals: 1},
		{Round: 1, HomeTeam: "Chelsea", AwayTeam: "Everton", HomeGoals: 2, AwayGoals: 0},
		{Round: 2, HomeTeam: "Liverpool", AwayTeam: "Chelsea", HomeGoals: 3, AwayGoals: 1},
		{Round: 2, HomeTeam: "Everton", AwayTeam: "Arsenal", HomeGoals: 0, AwayGoals: 2},
		{Round: 3, HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeGoals: 2, AwayGoals: 2},
		{Round: 3, HomeTeam: "Liverpool", AwayTeam: "Everton", HomeGoals: 4, AwayGoals: 0},
		{Round: 4, HomeTeam: "Liverpool", AwayTeam: "Arsenal", HomeGoals: 0, AwayGoals: 1},
		{Round: 4, HomeTeam: "Everton", AwayTeam: "Chelsea", HomeGoals: 1, AwayGoals: 1},
		{Round: 5, HomeTeam: "Chelsea", AwayTeam: "Liverpool", HomeGoals: 0, AwayGoals: 2},
		{Round: 5, HomeTeam: "Arsenal", AwayTeam: "Everton", HomeGoals: 3, AwayGoals: 1},
		{Round: 6, HomeTeam: "Chelsea", AwayTeam: "Arsenal", HomeGoals: 1, AwayGoals: 0},
		{Round: 6, HomeTeam: "Everton", AwayTeam: "Liverpool", HomeGoals: 2, AwayGoals: 2},
	}
}
