package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/fare"
	"github.com/Domenick1991/departures/internal/render"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Fare    FareConfig    `yaml:"fare"`
}

type BoardConfig struct {
	CurrentAirport string         `yaml:"current_airport"`
	Flights        []FlightConfig `yaml:"flights"`
}

// FlightConfig is a seed flight. DepartureTime is RFC3339, "now", or empty for none.
type FlightConfig struct {
	Destination   string `yaml:"destination"`
	Airline       string `yaml:"airline"`
	FlightNumber  string `yaml:"flight_number"`
	DepartureTime string `yaml:"departure_time"`
	Terminal      string `yaml:"terminal"`
	Status        string `yaml:"status"`
}

type DisplayConfig struct {
	Locale  string `yaml:"locale"`
	Color   bool   `yaml:"color"`
	Compact bool   `yaml:"compact"`
}

// FareConfig charges left unset fall back to the fare package defaults; an explicit 0 is kept.
type FareConfig struct {
	BagCharge     *float64 `yaml:"bag_charge"`
	MileageCharge *float64 `yaml:"mileage_charge"`
}

func (f FareConfig) Calculator() fare.Calculator {
	c := fare.DefaultCalculator
	if f.BagCharge != nil {
		c.BagCharge = *f.BagCharge
	}
	if f.MileageCharge != nil {
		c.MileageCharge = *f.MileageCharge
	}
	return c
}

func (f FlightConfig) ToFlight(now time.Time) (domain.Flight, error) {
	status, err := domain.ParseFlightStatus(f.Status)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("flight %s: %w", f.FlightNumber, err)
	}

	flight := domain.Flight{
		Destination:  domain.Airport{Destination: f.Destination},
		Airline:      f.Airline,
		FlightNumber: f.FlightNumber,
		Status:       status,
	}

	switch dt := strings.TrimSpace(f.DepartureTime); {
	case dt == "":
	case strings.EqualFold(dt, "now"):
		flight.DepartureTime = domain.Ptr(now)
	default:
		t, err := time.Parse(time.RFC3339, dt)
		if err != nil {
			return domain.Flight{}, fmt.Errorf("flight %s: invalid departure_time: %w", f.FlightNumber, err)
		}
		flight.DepartureTime = &t
	}

	if terminal := strings.TrimSpace(f.Terminal); terminal != "" {
		flight.Terminal = domain.Ptr(terminal)
	}
	return flight, nil
}

// SeedFlights converts every configured flight, stopping at the first bad one.
func (b BoardConfig) SeedFlights(now time.Time) ([]domain.Flight, error) {
	flights := make([]domain.Flight, 0, len(b.Flights))
	for _, fc := range b.Flights {
		f, err := fc.ToFlight(now)
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, nil
}

// Default is the JFK board used when no config file is present.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			CurrentAirport: "JFK",
			Flights: []FlightConfig{
				{Destination: "Tokyo (NRT)", Airline: "ANA", FlightNumber: "NH 9", DepartureTime: "now", Terminal: "7", Status: string(domain.FlightStatusEnRouteOnTime)},
				{Destination: "Orlando (MCO)", Airline: "Delta Air Lines", FlightNumber: "DL 761", DepartureTime: "now", Status: string(domain.FlightStatusDiverted)},
				{Destination: "Charlotte (CLT)", Airline: "Finnair", FlightNumber: "AY 4072", Status: string(domain.FlightStatusCanceled)},
			},
		},
		Display: DisplayConfig{Locale: "en_US"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Board.Flights = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if _, err := render.ParseLocale(cfg.Display.Locale); err != nil {
		return nil, fmt.Errorf("failed to parse config: display.locale: %w", err)
	}

	return cfg, nil
}
