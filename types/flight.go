package types

import "Skyline/models"

const NotAvailable = "N/A"

// FlightSearchRequest 航班搜索条件，全部可选
type FlightSearchRequest struct {
	Dep     string `form:"dep" json:"dep,omitempty"`
	Arr     string `form:"arr" json:"arr,omitempty"`
	Airline string `form:"airline" json:"airline,omitempty"`
	From    string `form:"from" json:"from,omitempty"`
	To      string `form:"to" json:"to,omitempty"`
}

// FlightItem one search result row
type FlightItem struct {
	FlightID           string `json:"flight_id"`
	Airline            string `json:"airline"`
	Status             string `json:"status"`
	Date               string `json:"date"`
	ScheduledDeparture string `json:"scheduled_departure"`
	DepartureAirport   string `json:"departure_airport"`
	ScheduledArrival   string `json:"scheduled_arrival"`
	ArrivalAirport     string `json:"arrival_airport"`
	Likes              int64  `json:"likes"`
	Dislikes           int64  `json:"dislikes"`
}

// FlightSearchPayload the cached part of a search response
type FlightSearchPayload struct {
	Flights       []FlightItem          `json:"flights"`
	PopularRoutes []models.PopularRoute `json:"popular_routes"`
	ResultsCount  int                   `json:"results_count"`
}

type FlightSearchResponse struct {
	Flights       []FlightItem          `json:"flights"`
	Filters       FlightSearchRequest   `json:"filters"`
	ResultsCount  int                   `json:"results_count"`
	User          *uint                 `json:"user"`
	PopularRoutes []models.PopularRoute `json:"popular_routes"`
}

type RecordRouteRequest struct {
	Dep string `json:"dep"`
	Arr string `json:"arr"`
}

type AirportPoint struct {
	AirportID string  `json:"airport_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PopularAirportsResponse airports and the busiest routes, used by the map views
type PopularAirportsResponse struct {
	Airports []AirportPoint        `json:"airports"`
	Routes   []models.PopularRoute `json:"routes"`
}

type VoteCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

type VoteResponse struct {
	Success bool       `json:"success"`
	Counts  VoteCounts `json:"counts"`
	MyVote  string     `json:"my_vote"`
}
