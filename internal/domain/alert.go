package domain

import "github.com/google/uuid"

// Alert is one passenger message produced for one flight.
type Alert struct {
	ID           uuid.UUID    `json:"id"`
	Destination  string       `json:"destination"`
	FlightNumber string       `json:"flight_number"`
	Status       FlightStatus `json:"status"`
	Message      string       `json:"message"`
}
