package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/fare"
	"github.com/Domenick1991/departures/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
board:
  current_airport: LGA
  flights:
    - destination: Boston
      airline: KLM
      flight_number: KL 6966
      departure_time: "2019-05-30T13:26:00Z"
      terminal: "4"
      status: Scheduled
display:
  locale: de_DE
  color: true
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "LGA", cfg.Board.CurrentAirport)
	require.Len(t, cfg.Board.Flights, 1)
	assert.Equal(t, "Boston", cfg.Board.Flights[0].Destination)
	assert.Equal(t, "de_DE", cfg.Display.Locale)
	assert.True(t, cfg.Display.Color)
	assert.Nil(t, cfg.Fare.BagCharge)
	assert.Equal(t, fare.DefaultCalculator, cfg.Fare.Calculator())
}

func TestLoadConfig_ExplicitZeroCharges(t *testing.T) {
	path := writeConfig(t, `
fare:
  bag_charge: 0
  mileage_charge: 0
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	calc := cfg.Fare.Calculator()
	assert.Equal(t, 0.0, calc.BagCharge)
	assert.Equal(t, 0.0, calc.MileageCharge)
	assert.Equal(t, 0.0, calc.Calculate(2, 2000, 3))
}

func TestLoadConfig_PartialCharges(t *testing.T) {
	path := writeConfig(t, `
fare:
  bag_charge: 30
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	calc := cfg.Fare.Calculator()
	assert.Equal(t, 30.0, calc.BagCharge)
	assert.Equal(t, fare.DefaultMileageCharge, calc.MileageCharge)
}

func TestLoadConfig_UnknownLocale(t *testing.T) {
	path := writeConfig(t, `
display:
  locale: xx_YY
`)

	_, err := LoadConfig(path)

	assert.ErrorIs(t, err, render.ErrUnknownLocale)
	assert.Contains(t, err.Error(), "display.locale")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "board: [unclosed")

	_, err := LoadConfig(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestFlightConfig_ToFlight(t *testing.T) {
	fc := FlightConfig{
		Destination:   "Boston",
		Airline:       "KLM",
		FlightNumber:  "KL 6966",
		DepartureTime: "2019-05-30T13:26:00Z",
		Terminal:      "4",
		Status:        "BOARDING",
	}

	f, err := fc.ToFlight(time.Now())

	require.NoError(t, err)
	assert.Equal(t, domain.FlightStatusBoarding, f.Status)
	require.NotNil(t, f.DepartureTime)
	assert.Equal(t, 13, f.DepartureTime.Hour())
	require.NotNil(t, f.Terminal)
	assert.Equal(t, "4", *f.Terminal)
}

func TestFlightConfig_ToFlightOptionalFields(t *testing.T) {
	now := time.Date(2019, time.May, 30, 9, 0, 0, 0, time.UTC)

	canceled, err := FlightConfig{FlightNumber: "AY 4072", Status: "canceled"}.ToFlight(now)
	require.NoError(t, err)
	assert.Nil(t, canceled.DepartureTime)
	assert.Nil(t, canceled.Terminal)

	scheduled, err := FlightConfig{FlightNumber: "B6 586", DepartureTime: "now", Status: "Scheduled"}.ToFlight(now)
	require.NoError(t, err)
	require.NotNil(t, scheduled.DepartureTime)
	assert.Equal(t, now, *scheduled.DepartureTime)
}

func TestFlightConfig_ToFlightBadStatus(t *testing.T) {
	_, err := FlightConfig{FlightNumber: "XX 1", Status: "grounded"}.ToFlight(time.Now())

	assert.ErrorIs(t, err, domain.ErrUnknownFlightStatus)
}

func TestFlightConfig_ToFlightBadTime(t *testing.T) {
	_, err := FlightConfig{FlightNumber: "XX 1", DepartureTime: "13:26", Status: "Delayed"}.ToFlight(time.Now())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid departure_time")
}

func TestDefault_SeedFlights(t *testing.T) {
	flights, err := Default().Board.SeedFlights(time.Now())

	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, domain.FlightStatusCanceled, flights[2].Status)
	assert.Nil(t, flights[2].DepartureTime)
	assert.Nil(t, flights[1].Terminal)
}
