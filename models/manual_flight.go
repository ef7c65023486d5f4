package models

import "time"

// ManualFlight a flight the user tracks by hand
type ManualFlight struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	FlightID   string     `gorm:"column:flight_id;size:32" json:"flight_id"`
	Airline    string     `gorm:"column:airline;size:128" json:"airline"`
	Departure  *time.Time `gorm:"column:departure" json:"departure"`
	Arrival    *time.Time `gorm:"column:arrival" json:"arrival"`
	DepAirport string     `gorm:"column:dep_airport;size:64" json:"dep_airport"`
	ArrAirport string     `gorm:"column:arr_airport;size:64" json:"arr_airport"`
	Note       string     `gorm:"column:note;type:text" json:"note"`
}

func (ManualFlight) TableName() string {
	return "manual_flights"
}
