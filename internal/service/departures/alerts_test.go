package departures

import (
	"testing"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertMessage_AllStatuses(t *testing.T) {
	f := domain.Flight{Destination: domain.Airport{Destination: "Boston"}, FlightNumber: "KL 6966"}

	expected := map[domain.FlightStatus]string{
		domain.FlightStatusEnRoute:        "Your flight to Boston is currently En Route",
		domain.FlightStatusEnRouteOnTime:  "Your flight to Boston is currently En Route and on time",
		domain.FlightStatusEnRouteDelayed: "Your flight to Boston is currently En Route, but delayed",
		domain.FlightStatusDiverted:       "We're sorry your flight to Boston has been diverted",
		domain.FlightStatusScheduled:      "Your flight to Boston is scheduled to depart at 1:26 PM from terminal: 4",
		domain.FlightStatusLandedDelayed:  "Flight to Boston has landed, but there is a short delay. We're sorry for the inconvenience.",
		domain.FlightStatusLandedOnTime:   "Flight to Boston has landed on time.",
		domain.FlightStatusDelayed:        "We're very sorry to inform you that your flight to Boston has been delayed.",
		domain.FlightStatusCanceled:       "We're sorry your flight to Boston was canceled. Here is a $500 voucher.",
		domain.FlightStatusBoarding:       "Your flight is boarding, please head to terminal: 4 immediately. The doors are closing soon.",
	}

	require.Len(t, expected, len(domain.AllFlightStatuses()))
	for _, s := range domain.AllFlightStatuses() {
		f.Status = s
		msg, err := alertMessage(f, "1:26 PM", "4")
		require.NoError(t, err, s.Label())
		assert.Equal(t, expected[s], msg)
	}
}

func TestAlertMessage_ScheduledWithoutTimeOrTerminal(t *testing.T) {
	board := NewDepartureBoard(&MockNotifier{})
	f := domain.Flight{
		Destination:  domain.Airport{Destination: "Rochester"},
		FlightNumber: "B6 586",
		Status:       domain.FlightStatusScheduled,
	}

	alerts, err := board.Alerts([]domain.Flight{f})

	require.NoError(t, err)
	assert.Equal(t, "Your flight to Rochester is scheduled to depart at --- from terminal: Terminal will be displayed soon", alerts[0].Message)
}

func TestAlertMessage_BoardingWithoutTerminal(t *testing.T) {
	board := NewDepartureBoard(&MockNotifier{})
	f := domain.Flight{Destination: domain.Airport{Destination: "Rochester"}, Status: domain.FlightStatusBoarding}

	alerts, err := board.Alerts([]domain.Flight{f})

	require.NoError(t, err)
	assert.Contains(t, alerts[0].Message, "terminal: Terminal will be displayed soon immediately")
}

func TestAlertMessage_UnknownStatus(t *testing.T) {
	f := domain.Flight{FlightNumber: "XX 1", Status: domain.FlightStatus("")}

	_, err := alertMessage(f, "---", TerminalPending)

	assert.ErrorIs(t, err, domain.ErrUnknownFlightStatus)
}
