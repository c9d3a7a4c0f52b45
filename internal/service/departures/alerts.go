package departures

import (
	"fmt"

	"github.com/Domenick1991/departures/internal/domain"
)

// TerminalPending replaces a terminal that has not been assigned yet.
const TerminalPending = "Terminal will be displayed soon"

// alertMessage covers every status in domain.AllFlightStatuses. Anything else is an error.
func alertMessage(f domain.Flight, timeStr, terminalStr string) (string, error) {
	dest := f.Destination.Destination

	switch f.Status {
	case domain.FlightStatusEnRoute:
		return fmt.Sprintf("Your flight to %s is currently En Route", dest), nil
	case domain.FlightStatusEnRouteOnTime:
		return fmt.Sprintf("Your flight to %s is currently En Route and on time", dest), nil
	case domain.FlightStatusEnRouteDelayed:
		return fmt.Sprintf("Your flight to %s is currently En Route, but delayed", dest), nil
	case domain.FlightStatusDiverted:
		return fmt.Sprintf("We're sorry your flight to %s has been diverted", dest), nil
	case domain.FlightStatusScheduled:
		return fmt.Sprintf("Your flight to %s is scheduled to depart at %s from terminal: %s", dest, timeStr, terminalStr), nil
	case domain.FlightStatusLandedDelayed:
		return fmt.Sprintf("Flight to %s has landed, but there is a short delay. We're sorry for the inconvenience.", dest), nil
	case domain.FlightStatusLandedOnTime:
		return fmt.Sprintf("Flight to %s has landed on time.", dest), nil
	case domain.FlightStatusDelayed:
		return fmt.Sprintf("We're very sorry to inform you that your flight to %s has been delayed.", dest), nil
	case domain.FlightStatusCanceled:
		return fmt.Sprintf("We're sorry your flight to %s was canceled. Here is a $500 voucher.", dest), nil
	case domain.FlightStatusBoarding:
		return fmt.Sprintf("Your flight is boarding, please head to terminal: %s immediately. The doors are closing soon.", terminalStr), nil
	}
	return "", fmt.Errorf("flight %s: %w: %q", f.FlightNumber, domain.ErrUnknownFlightStatus, string(f.Status))
}
