package models

import "time"

// Flight 实时航班 (scheduled flight fed by an external importer)
type Flight struct {
	FlightID             string    `gorm:"column:flight_id;primaryKey;size:32" json:"flight_id"`
	AirlineName          string    `gorm:"column:airline_name;size:128;index" json:"airline_name"`
	Status               string    `gorm:"column:status;size:32" json:"status"`
	ScheduledDeparture   time.Time `gorm:"column:scheduled_departure;index" json:"scheduled_departure"`
	ScheduledArrival     time.Time `gorm:"column:scheduled_arrival" json:"scheduled_arrival"`
	DepartureAirportID   string    `gorm:"column:departure_airport_id;size:8;index" json:"departure_airport_id"`
	DepartureAirportName string    `gorm:"column:departure_airport_name;size:255" json:"departure_airport_name"`
	ArrivalAirportID     string    `gorm:"column:arrival_airport_id;size:8;index" json:"arrival_airport_id"`
	ArrivalAirportName   string    `gorm:"column:arrival_airport_name;size:255" json:"arrival_airport_name"`
}

func (Flight) TableName() string {
	return "realtime_flight"
}
