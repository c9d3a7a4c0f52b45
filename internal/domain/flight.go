package domain

import "time"

type Airport struct {
	Destination string `json:"destination"`
}

type Flight struct {
	Destination   Airport      `json:"destination"`
	Airline       string       `json:"airline"`
	FlightNumber  string       `json:"flight_number"`
	DepartureTime *time.Time   `json:"departure_time,omitempty"`
	Terminal      *string      `json:"terminal,omitempty"`
	Status        FlightStatus `json:"status"`
}

// Ptr is a helper for filling the optional fields of a Flight.
func Ptr[T any](v T) *T {
	return &v
}
