package models

// Airport static reference data for autocomplete and map markers
type Airport struct {
	AirportID string  `gorm:"column:airport_id;primaryKey;size:8" json:"airport_id"`
	Name      string  `gorm:"column:name;size:255;index" json:"name"`
	Latitude  float64 `gorm:"column:latitude" json:"latitude"`
	Longitude float64 `gorm:"column:longitude" json:"longitude"`
}

func (Airport) TableName() string {
	return "airport"
}
