package league

import (
	"sort"

	crerr "github.com/cockroachdb/errors"
)

// Season is an immutable snapshot of teams and their matches.
type Season struct {
	Teams   []*Team
	Matches []*Match
}

// NewSeason resolves team names and partitions every record into the
// home team's and away team's match lists. Teams are ordered by name.
func NewSeason(records []Record) (*Season, error) {
	byName := make(map[string]*Team)
	resolve := func(name string) *Team {
		t, ok := byName[name]
		if !ok {
			t = &Team{Name: name}
			byName[name] = t
		}
		return t
	}

	matches := make([]*Match, 0, len(records))
	for idx, raw := range records {
		if err := raw.Validate(); err != nil {
			return nil, crerr.Wrapf(err, "record %d", idx+1)
		}
		r := raw.Normalize()

		m := &Match{
			Round:     r.Round,
			Home:      resolve(r.HomeTeam),
			Away:      resolve(r.AwayTeam),
			HomeGoals: r.HomeGoals,
			AwayGoals: r.AwayGoals,
		}
		m.Home.HomeMatches = append(m.Home.HomeMatches, m)
		m.Away.AwayMatches = append(m.Away.AwayMatches, m)
		matches = append(matches, m)
	}

	teams := make([]*Team, 0, len(byName))
	for _, t := range byName {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		return teams[i].Name < teams[j].Name
	})

	return &Season{Teams: teams, Matches: matches}, nil
}

// Team looks a team up by name.
func (s *Season) Team(name string) (*Team, bool) {
	for _, t := range s.Teams {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Records flattens the season back into source order.
func (s *Season) Records() []Record {
	out := make([]Record, 0, len(s.Matches))
	for _, m := range s.Matches {
		out = append(out, m.Record())
	}
	return out
}
