package console

import (
	"io"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
	"github.com/riskibarqy/premier-league-stats/internal/domain/statistics"
	"github.com/riskibarqy/premier-league-stats/internal/usecase"
)

const (
	reportAPIVersion = "1.0"
	errorDomain      = "premier-league-stats"
)

type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type reportDTO struct {
	Teams              int              `json:"teams"`
	Matches            int              `json:"matches"`
	MostGoals          teamValueDTO     `json:"mostGoals"`
	MostAwayGoals      teamValueDTO     `json:"mostAwayGoals"`
	MostHomeGoals      teamValueDTO     `json:"mostHomeGoals"`
	BestGoalDifference teamValueDTO     `json:"bestGoalDifference"`
	Averages           []averageRowDTO  `json:"averages"`
	Standings          []standingRowDTO `json:"standings"`
}

type teamValueDTO struct {
	Team  string `json:"team"`
	Value int    `json:"value"`
}

type averageRowDTO struct {
	Team          string  `json:"team"`
	ScoredHome    float64 `json:"scoredHome"`
	ScoredAway    float64 `json:"scoredAway"`
	ScoredTotal   float64 `json:"scoredTotal"`
	ConcededHome  float64 `json:"concededHome"`
	ConcededAway  float64 `json:"concededAway"`
	ConcededTotal float64 `json:"concededTotal"`
}

type standingRowDTO struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Drawn          int    `json:"drawn"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
}

// JSONRenderer writes the report as one JSON document.
type JSONRenderer struct{}

func (JSONRenderer) Render(w io.Writer, report usecase.Report) error {
	return writeJSON(w, responseEnvelope{
		APIVersion: reportAPIVersion,
		Data:       reportToDTO(report),
	})
}

func (JSONRenderer) RenderError(w io.Writer, err error) error {
	mapped := mapError(err)
	return writeJSON(w, responseEnvelope{
		APIVersion: reportAPIVersion,
		Error: &errorBody{
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []errorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func writeJSON(w io.Writer, payload any) error {
	return sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func reportToDTO(report usecase.Report) reportDTO {
	out := reportDTO{
		Teams:              report.Teams,
		Matches:            report.Matches,
		MostGoals:          teamValueToDTO(report.MostGoals),
		MostAwayGoals:      teamValueToDTO(report.MostAwayGoals),
		MostHomeGoals:      teamValueToDTO(report.MostHomeGoals),
		BestGoalDifference: teamValueToDTO(report.BestGoalDifference),
		Averages:           make([]averageRowDTO, 0, len(report.Averages)),
		Standings:          make([]standingRowDTO, 0, len(report.Standings)),
	}
	for _, row := range report.Averages {
		out.Averages = append(out.Averages, averageRowDTO{
			Team:          teamName(row.Team),
			ScoredHome:    row.ScoredHome,
			ScoredAway:    row.ScoredAway,
			ScoredTotal:   row.ScoredTotal,
			ConcededHome:  row.ConcededHome,
			ConcededAway:  row.ConcededAway,
			ConcededTotal: row.ConcededTotal,
		})
	}
	for _, row := range report.Standings {
		out.Standings = append(out.Standings, standingRowDTO{
			Rank:           row.Rank,
			Team:           teamName(row.Team),
			Played:         row.Played,
			Won:            row.Won,
			Drawn:          row.Drawn,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Points:         row.Points,
		})
	}
	return out
}

func teamValueToDTO(v statistics.TeamValue) teamValueDTO {
	return teamValueDTO{Team: teamName(v.Team), Value: v.Value}
}

func teamName(t *league.Team) string {
	if t == nil {
		return ""
	}
	return t.Name
}
