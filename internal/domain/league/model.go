package league

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// ErrMalformedRecord marks input that breaks the model's preconditions:
// negative goals, missing or unresolved teams, rounds below one.
var ErrMalformedRecord = crerr.New("malformed match record")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Record is one flat result line as supplied by a match source.
type Record struct {
	Round     int    `validate:"gte=1"`
	HomeTeam  string `validate:"required"`
	AwayTeam  string `validate:"required,nefield=HomeTeam"`
	HomeGoals int    `validate:"gte=0"`
	AwayGoals int    `validate:"gte=0"`
}

func (r Record) Normalize() Record {
	r.HomeTeam = strings.TrimSpace(r.HomeTeam)
	r.AwayTeam = strings.TrimSpace(r.AwayTeam)
	return r
}

func (r Record) Validate() error {
	if err := validate.Struct(r.Normalize()); err != nil {
		return crerr.Wrapf(ErrMalformedRecord, "round %d %q vs %q: %s", r.Round, r.HomeTeam, r.AwayTeam, describeValidation(err))
	}
	return nil
}

// Team is a club together with the matches it hosted and visited.
type Team struct {
	Name        string
	HomeMatches []*Match
	AwayMatches []*Match
}

// Played returns the number of home and away matches.
func (t *Team) Played() int {
	return len(t.HomeMatches) + len(t.AwayMatches)
}

// Validate checks the home/away membership invariant, that every match has
// a distinct resolved opponent, and goal values.
func (t *Team) Validate() error {
	if t == nil {
		return crerr.Wrap(ErrMalformedRecord, "nil team")
	}
	if strings.TrimSpace(t.Name) == "" {
		return crerr.Wrap(ErrMalformedRecord, "team name is required")
	}
	for _, m := range t.HomeMatches {
		if m == nil || m.Home != t {
			return crerr.Wrapf(ErrMalformedRecord, "team %q: home list holds a match it did not host", t.Name)
		}
		if m.Away == nil || m.Away == t {
			return crerr.Wrapf(ErrMalformedRecord, "team %q: round %d home match has no resolved opponent", t.Name, m.Round)
		}
		if err := m.validateGoals(); err != nil {
			return err
		}
	}
	for _, m := range t.AwayMatches {
		if m == nil || m.Away != t {
			return crerr.Wrapf(ErrMalformedRecord, "team %q: away list holds a match it did not visit", t.Name)
		}
		if m.Home == nil || m.Home == t {
			return crerr.Wrapf(ErrMalformedRecord, "team %q: round %d away match has no resolved opponent", t.Name, m.Round)
		}
		if err := m.validateGoals(); err != nil {
			return err
		}
	}
	return nil
}

// Match is a single played fixture. It is not owned by either team.
type Match struct {
	Round     int
	Home      *Team
	Away      *Team
	HomeGoals int
	AwayGoals int
}

func (m *Match) validateGoals() error {
	if m.HomeGoals < 0 || m.AwayGoals < 0 {
		return crerr.Wrapf(ErrMalformedRecord, "round %d: negative goals %d:%d", m.Round, m.HomeGoals, m.AwayGoals)
	}
	return nil
}

// Record flattens the match back into its source form.
func (m *Match) Record() Record {
	r := Record{
		Round:     m.Round,
		HomeGoals: m.HomeGoals,
		AwayGoals: m.AwayGoals,
	}
	if m.Home != nil {
		r.HomeTeam = m.Home.Name
	}
	if m.Away != nil {
		r.AwayTeam = m.Away.Name
	}
	return r
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !crerr.As(err, &fieldErrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+" must satisfy "+fe.Tag()+"="+fe.Param())
			continue
		}
		parts = append(parts, fe.Field()+" is "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
