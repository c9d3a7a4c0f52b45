package departures

import (
	"context"
	"fmt"
	"os"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/notify"
	"github.com/Domenick1991/departures/internal/render"
	"github.com/google/uuid"
)

const DefaultAirport = "JFK"

type BoardUseCase interface {
	Add(flights ...domain.Flight)
	Flights() []domain.Flight
	CurrentAirport() string
	Alerts(flights []domain.Flight) ([]domain.Alert, error)
	AlertPassengers(ctx context.Context, flights []domain.Flight) error
}

// Notifier delivers one alert line to the passengers of a flight.
type Notifier interface {
	Send(ctx context.Context, alert domain.Alert) error
}

// DepartureBoard keeps flights in the order they were added. It never removes them.
type DepartureBoard struct {
	currentAirport string
	flights        []domain.Flight
	notifier       Notifier
	times          *render.TimeFormatter
	newID          func() uuid.UUID
}

type Option func(*DepartureBoard)

func WithCurrentAirport(code string) Option {
	return func(b *DepartureBoard) {
		if code != "" {
			b.currentAirport = code
		}
	}
}

func WithTimeFormatter(f *render.TimeFormatter) Option {
	return func(b *DepartureBoard) { b.times = f }
}

func withIDGenerator(gen func() uuid.UUID) Option {
	return func(b *DepartureBoard) { b.newID = gen }
}

// NewDepartureBoard sends alerts to stdout when notifier is nil.
func NewDepartureBoard(notifier Notifier, opts ...Option) *DepartureBoard {
	b := &DepartureBoard{
		currentAirport: DefaultAirport,
		notifier:       notifier,
		newID:          uuid.New,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.notifier == nil {
		b.notifier = notify.NewConsole(os.Stdout)
	}
	if b.times == nil {
		b.times = render.DefaultTimeFormatter()
	}
	return b
}

func (b *DepartureBoard) Add(flights ...domain.Flight) {
	b.flights = append(b.flights, flights...)
}

func (b *DepartureBoard) Flights() []domain.Flight {
	out := make([]domain.Flight, len(b.flights))
	copy(out, b.flights)
	return out
}

func (b *DepartureBoard) CurrentAirport() string {
	return b.currentAirport
}

// Alerts builds one alert per flight without sending anything.
func (b *DepartureBoard) Alerts(flights []domain.Flight) ([]domain.Alert, error) {
	alerts := make([]domain.Alert, 0, len(flights))
	for _, f := range flights {
		terminalStr := TerminalPending
		if f.Terminal != nil {
			terminalStr = *f.Terminal
		}
		msg, err := alertMessage(f, b.times.Format(f.DepartureTime), terminalStr)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, domain.Alert{
			ID:           b.newID(),
			Destination:  f.Destination.Destination,
			FlightNumber: f.FlightNumber,
			Status:       f.Status,
			Message:      msg,
		})
	}
	return alerts, nil
}

// AlertPassengers sends exactly one message per given flight. The flights need not be on the board.
// Nothing is sent if any flight has a status outside the known set.
func (b *DepartureBoard) AlertPassengers(ctx context.Context, flights []domain.Flight) error {
	alerts, err := b.Alerts(flights)
	if err != nil {
		return err
	}
	for _, a := range alerts {
		if err := b.notifier.Send(ctx, a); err != nil {
			return fmt.Errorf("alert passengers of %s: %w", a.FlightNumber, err)
		}
	}
	return nil
}

var _ BoardUseCase = (*DepartureBoard)(nil)
