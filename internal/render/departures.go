package render

import (
	"fmt"
	"io"
	"os"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/fatih/color"
)

type Layout int

const (
	// LayoutDetailed is the pipe separated row with the status label.
	LayoutDetailed Layout = iota
	// LayoutCompact drops the status column.
	LayoutCompact
)

// FlightLister is satisfied by a departure board.
type FlightLister interface {
	Flights() []domain.Flight
}

var statusColors = map[domain.FlightStatus]color.Attribute{
	domain.FlightStatusEnRoute:        color.FgCyan,
	domain.FlightStatusEnRouteOnTime:  color.FgGreen,
	domain.FlightStatusEnRouteDelayed: color.FgYellow,
	domain.FlightStatusLandedOnTime:   color.FgGreen,
	domain.FlightStatusLandedDelayed:  color.FgYellow,
	domain.FlightStatusDiverted:       color.FgMagenta,
	domain.FlightStatusScheduled:      color.FgBlue,
	domain.FlightStatusCanceled:       color.FgRed,
	domain.FlightStatusDelayed:        color.FgYellow,
	domain.FlightStatusBoarding:       color.FgHiGreen,
}

type Printer struct {
	out    io.Writer
	times  *TimeFormatter
	layout Layout
	color  bool
}

type Option func(*Printer)

func WithLayout(l Layout) Option {
	return func(p *Printer) { p.layout = l }
}

func WithTimeFormatter(f *TimeFormatter) Option {
	return func(p *Printer) { p.times = f }
}

// WithColor colors the status label. Only the detailed layout shows a status.
func WithColor(enabled bool) Option {
	return func(p *Printer) { p.color = enabled }
}

func NewPrinter(out io.Writer, opts ...Option) *Printer {
	p := &Printer{out: out, layout: LayoutDetailed}
	for _, opt := range opts {
		opt(p)
	}
	if p.out == nil {
		p.out = os.Stdout
	}
	if p.times == nil {
		p.times = DefaultTimeFormatter()
	}
	return p
}

// Line renders one flight. Missing time and terminal always get a placeholder;
// a status outside the known set is an error in either layout.
func (p *Printer) Line(f domain.Flight) (string, error) {
	if !f.Status.Valid() {
		return "", fmt.Errorf("flight %s: %w: %q", f.FlightNumber, domain.ErrUnknownFlightStatus, string(f.Status))
	}

	timeStr := p.times.Format(f.DepartureTime)
	terminalStr := TerminalPlaceholder
	if f.Terminal != nil {
		terminalStr = *f.Terminal
	}

	switch p.layout {
	case LayoutCompact:
		return fmt.Sprintf("Destination: %s Airline: %s Flight: %s Time: %s Terminal: %s",
			f.Destination.Destination, f.Airline, f.FlightNumber, timeStr, terminalStr), nil
	default:
		return fmt.Sprintf("Destination: %s | Airline: %s | Flight Number: %s | Time: %s | Terminal: %s | Status: %s",
			f.Destination.Destination, f.Airline, f.FlightNumber, timeStr, terminalStr, p.status(f.Status)), nil
	}
}

func (p *Printer) Lines(flights []domain.Flight) ([]string, error) {
	lines := make([]string, 0, len(flights))
	for _, f := range flights {
		line, err := p.Line(f)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Print writes nothing when any flight fails to render.
func (p *Printer) Print(board FlightLister) error {
	lines, err := p.Lines(board.Flights())
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return fmt.Errorf("print departure: %w", err)
		}
	}
	return nil
}

func (p *Printer) status(s domain.FlightStatus) string {
	c := color.New(statusColors[s])
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s.Label())
}

// PrintDepartures writes the detailed board, one row per flight.
func PrintDepartures(w io.Writer, board FlightLister) error {
	return NewPrinter(w).Print(board)
}

// PrintDepartures2 writes the compact board without the status column.
func PrintDepartures2(w io.Writer, board FlightLister) error {
	return NewPrinter(w, WithLayout(LayoutCompact)).Print(board)
}
