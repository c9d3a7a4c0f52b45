package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownFlightStatus = errors.New("unknown flight status")

type FlightStatus string

const (
	FlightStatusEnRoute        FlightStatus = "EN_ROUTE"
	FlightStatusEnRouteOnTime  FlightStatus = "EN_ROUTE_ON_TIME"
	FlightStatusEnRouteDelayed FlightStatus = "EN_ROUTE_DELAYED"
	FlightStatusLandedOnTime   FlightStatus = "LANDED_ON_TIME"
	FlightStatusLandedDelayed  FlightStatus = "LANDED_DELAYED"
	FlightStatusDiverted       FlightStatus = "DIVERTED"
	FlightStatusScheduled      FlightStatus = "SCHEDULED"
	FlightStatusCanceled       FlightStatus = "CANCELED"
	FlightStatusDelayed        FlightStatus = "DELAYED"
	FlightStatusBoarding       FlightStatus = "BOARDING"
)

// statusLabels is the closed set of statuses. A status missing here is not a status.
var statusLabels = map[FlightStatus]string{
	FlightStatusEnRoute:        "En Route",
	FlightStatusEnRouteOnTime:  "En Route-On-Time",
	FlightStatusEnRouteDelayed: "En Route-Delayed",
	FlightStatusLandedOnTime:   "Landed-On-Time",
	FlightStatusLandedDelayed:  "Landed-Delayed",
	FlightStatusDiverted:       "Diverted",
	FlightStatusScheduled:      "Scheduled",
	FlightStatusCanceled:       "Canceled",
	FlightStatusDelayed:        "Delayed",
	FlightStatusBoarding:       "Boarding",
}

// AllFlightStatuses returns every status in board order.
func AllFlightStatuses() []FlightStatus {
	return []FlightStatus{
		FlightStatusEnRoute,
		FlightStatusEnRouteOnTime,
		FlightStatusEnRouteDelayed,
		FlightStatusLandedOnTime,
		FlightStatusLandedDelayed,
		FlightStatusDiverted,
		FlightStatusScheduled,
		FlightStatusCanceled,
		FlightStatusDelayed,
		FlightStatusBoarding,
	}
}

func (s FlightStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the text shown on the board, or the raw code for a status outside the set.
func (s FlightStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s FlightStatus) String() string {
	return s.Label()
}

// ParseFlightStatus accepts either a status code ("EN_ROUTE") or its label ("En Route").
func ParseFlightStatus(v string) (FlightStatus, error) {
	v = strings.TrimSpace(v)
	for _, s := range AllFlightStatuses() {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFlightStatus, v)
}
