package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/riskibarqy/premier-league-stats/internal/usecase"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a finished report, or the error that prevented one.
type Renderer interface {
	Render(w io.Writer, report usecase.Report) error
	RenderError(w io.Writer, err error) error
}

// New returns the renderer for format. An empty format means text.
func New(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatText:
		return TextRenderer{}, nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

type mappedError struct {
	Reason string
	Status string
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{Reason: "invalidInput", Status: "INVALID_ARGUMENT"}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{Reason: "notFound", Status: "NOT_FOUND"}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{Reason: "dependencyUnavailable", Status: "UNAVAILABLE"}
	default:
		return mappedError{Reason: "internalError", Status: "INTERNAL"}
	}
}
