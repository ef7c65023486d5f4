package types

import "time"

// ManualFlightRequest create/update body; times are optional.
type ManualFlightRequest struct {
	FlightID           string     `json:"flight_id"`
	Airline            string     `json:"airline"`
	ScheduledDeparture *time.Time `json:"scheduled_departure"`
	ScheduledArrival   *time.Time `json:"scheduled_arrival"`
	DepartureAirport   string     `json:"departure_airport"`
	ArrivalAirport     string     `json:"arrival_airport"`
	Note               string     `json:"note"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
