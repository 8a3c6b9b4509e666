package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/riskibarqy/premier-league-stats/internal/domain/league"
)

const DefaultDelimiter = ';'

// CommentChar starts a line that is skipped, unless it is also the delimiter.
const CommentChar = '#'

const (
	columnRound = iota
	columnHomeTeam
	columnAwayTeam
	columnHomeGoals
	columnAwayGoals
	columnCount
)

const utf8BOM = "\ufeff"

type Config struct {
	Path      string
	Delimiter rune
	HasHeader bool
}

// Reader loads match results from a delimited file with the columns
// round, home team, away team, home goals, away goals.
type Reader struct {
	path      string
	delimiter rune
	hasHeader bool
}

func NewReader(cfg Config) *Reader {
	delimiter := cfg.Delimiter
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}
	return &Reader{
		path:      strings.TrimSpace(cfg.Path),
		delimiter: delimiter,
		hasHeader: cfg.HasHeader,
	}
}

func (r *Reader) Path() string {
	return r.path
}

func (r *Reader) Read(ctx context.Context) ([]league.Record, error) {
	if r.path == "" {
		return nil, fmt.Errorf("csv path is required")
	}

	file, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer file.Close()

	records, err := Parse(ctx, file, r.delimiter, r.hasHeader)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.path, err)
	}
	return records, nil
}

// Parse reads every line of src. Blank lines and lines starting with
// CommentChar are skipped; any other bad line fails the whole parse.
func Parse(ctx context.Context, src io.Reader, delimiter rune, hasHeader bool) ([]league.Record, error) {
	reader := csv.NewReader(src)
	reader.Comma = delimiter
	if delimiter != CommentChar {
		reader.Comment = CommentChar
	}
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []league.Record
	first := true
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", league.ErrMalformedRecord, err)
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			fields[0] = strings.TrimPrefix(fields[0], utf8BOM)
			if hasHeader {
				continue
			}
		}

		record, err := parseFields(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func parseFields(fields []string) (league.Record, error) {
	if len(fields) < columnCount {
		return league.Record{}, fmt.Errorf("%w: expected %d columns, got %d", league.ErrMalformedRecord, columnCount, len(fields))
	}

	var ints [columnCount]int
	for _, col := range []int{columnRound, columnHomeGoals, columnAwayGoals} {
		value, err := strconv.Atoi(strings.TrimSpace(fields[col]))
		if err != nil {
			return league.Record{}, fmt.Errorf("%w: column %d: %v", league.ErrMalformedRecord, col+1, err)
		}
		ints[col] = value
	}

	record := league.Record{
		Round:     ints[columnRound],
		HomeTeam:  fields[columnHomeTeam],
		AwayTeam:  fields[columnAwayTeam],
		HomeGoals: ints[columnHomeGoals],
		AwayGoals: ints[columnAwayGoals],
	}.Normalize()
	if err := record.Validate(); err != nil {
		return league.Record{}, err
	}
	return record, nil
}
