package server

import (
	"Skyline/handler"
)

type Handlers struct {
	Flight       *handler.Flight
	Prediction   *handler.Prediction
	PopularMap   *handler.PopularMap
	User         *handler.User
	ManualFlight *handler.ManualFlight
}
