package memory

import (
	"context"
	"testing"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
)

func TestRecordRepository_ReplaceAllAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRecordRepository(SeedRecords())

	seeded, err := repo.ListRecords(ctx)
	if err != nil {
		t.Fatalf("list seeded records: %v", err)
	}
	if len(seeded) != len(SeedRecords()) {
		t.Fatalf("unexpected seeded count: %d", len(seeded))
	}

	in := []league.Record{
		{Round: 1, HomeTeam: "Arsenal", AwayTeam: "Everton", HomeGoals: 2, AwayGoals: 0},
	}
	if err := repo.ReplaceAll(ctx, in); err != nil {
		t.Fatalf("replace all: %v", err)
	}
	in[0].HomeGoals = 9

	got, err := repo.ListRecords(ctx)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(got) != 1 || got[0].HomeGoals != 2 {
		t.Fatalf("expected stored copy to be isolated, got=%+v", got)
	}

	got[0].AwayTeam = "changed"
	again, _ := repo.ListRecords(ctx)
	if again[0].AwayTeam != "Everton" {
		t.Fatalf("expected list to return a copy, got=%+v", again)
	}
}

func TestSeedRecords_BuildValidSeason(t *testing.T) {
	t.Parallel()

	season, err := league.NewSeason(SeedRecords())
	if err != nil {
		t.Fatalf("seed records invalid: %v", err)
	}
	for _, team := range season.Teams {
		if len(team.HomeMatches) == 0 || len(team.AwayMatches) == 0 {
			t.Fatalf("seed team %s should play home and away", team.Name)
		}
	}
}
