package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/riskibarqy/premier-league-stats/internal/domain/statistics"
	"github.com/riskibarqy/premier-league-stats/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const bannerWidth = 60

// TextRenderer prints the report for a terminal.
type TextRenderer struct{}

func (TextRenderer) Render(w io.Writer, report usecase.Report) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeBanner(buf, report)

	writeLeader(buf, "Team with the most goals scored", report.MostGoals, "goals")
	writeLeader(buf, "Team with the most away goals scored", report.MostAwayGoals, "away goals")
	writeLeader(buf, "Team with the most home goals scored", report.MostHomeGoals, "home goals")
	writeLeader(buf, "Team with the best goal difference", report.BestGoalDifference, "goal difference")

	writeCaption(buf, "Team performance (average goals per match)")
	if err := writeAverages(buf, report.Averages); err != nil {
		return err
	}

	writeCaption(buf, "Standings")
	if err := writeStandings(buf, report.Standings); err != nil {
		return err
	}

	_, err := w.Write(buf.B)
	return err
}

func (TextRenderer) RenderError(w io.Writer, err error) error {
	mapped := mapError(err)
	_, werr := fmt.Fprintf(w, "report failed (%s): %v\n", mapped.Status, err)
	return werr
}

func writeBanner(w io.Writer, report usecase.Report) {
	line := strings.Repeat("-", bannerWidth)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "P R E M I E R  L E A G U E  (statistics)")
	fmt.Fprintf(w, "%d teams, %d matches\n", report.Teams, report.Matches)
	fmt.Fprintln(w, line)
}

func writeCaption(w io.Writer, caption string) {
	frame := strings.Repeat("=", len(caption))
	fmt.Fprintln(w)
	fmt.Fprintln(w, frame)
	fmt.Fprintln(w, caption)
	fmt.Fprintln(w, frame)
	fmt.Fprintln(w)
}

func writeLeader(w io.Writer, caption string, value statistics.TeamValue, unit string) {
	writeCaption(w, caption)
	fmt.Fprintf(w, "%s: %d %s\n", teamName(value.Team), value.Value, unit)
}

func writeAverages(w io.Writer, rows []statistics.AverageRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Team\tScored home\tScored away\tScored\tConceded home\tConceded away\tConceded\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			teamName(row.Team),
			row.ScoredHome, row.ScoredAway, row.ScoredTotal,
			row.ConcededHome, row.ConcededAway, row.ConcededTotal,
		)
	}
	return tw.Flush()
}

func writeStandings(w io.Writer, rows []statistics.StandingRow) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "#\tTeam\tP\tW\tD\tL\tGF\tGA\tGD\tPts\t")
	for _, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%+d\t%d\t\n",
			row.Rank, teamName(row.Team),
			row.Played, row.Won, row.Drawn, row.Lost,
			row.GoalsFor, row.GoalsAgainst, row.GoalDifference, row.Points,
		)
	}
	return tw.Flush()
}
