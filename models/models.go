package models

// All lists every table for AutoMigrate.
func All() []any {
	return []any{
		&Passenger{},
		&Airport{},
		&Flight{},
		&Vote{},
		&Review{},
		&SavedSearch{},
		&ManualFlight{},
		&PopularRoute{},
	}
}
