package statistics

import crerr "github.com/cockroachdb/errors"

var (
	// ErrEmptyInput is returned by the best-of queries when there are no teams.
	ErrEmptyInput = crerr.New("no teams to rank")
	// ErrDivisionUndefined is returned when an average has no matches to divide by.
	ErrDivisionUndefined = crerr.New("average undefined for zero matches")
)
