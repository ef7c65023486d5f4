package cache

import (
	"fmt"
	"time"
)

const (
	PopularAirportsKey  = "popular_airports_and_routes"
	PopularRoutesKey    = "popular_routes"
	FlightSearchPattern = "flights:*"

	// anyValue stands in for an unset search filter.
	anyValue = "any"
)

const (
	FlightSearchTTL    = 300 * time.Second
	FlightReviewsTTL   = 300 * time.Second
	PopularAirportsTTL = 600 * time.Second
	PricePredictionTTL = 600 * time.Second
)

// FlightSearchKey flights:<dep>:<arr>:<airline>:<from>:<to>
//
// Pagination and sort are not part of the key; results are capped and fully
// determined by the five filters. A literal "any" filter shares the key of an
// unset one, and values containing ':' can shift into the neighboring field.
func FlightSearchKey(dep, arr, airline, from, to string) string {
	return fmt.Sprintf("flights:%s:%s:%s:%s:%s",
		orAny(dep), orAny(arr), orAny(airline), orAny(from), orAny(to))
}

// FlightReviewsKey flight_reviews:<flightId>
func FlightReviewsKey(flightID string) string {
	return "flight_reviews:" + flightID
}

// PricePredictionKey price_prediction:<dep>:<arr>:<date>
func PricePredictionKey(dep, arr, date string) string {
	return fmt.Sprintf("price_prediction:%s:%s:%s", dep, arr, date)
}

func orAny(s string) string {
	if s == "" {
		return anyValue
	}
	return s
}
