package dao

import (
	"Skyline/models"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

const FlightSearchLimit = 30

// FlightFilter search predicate; zero fields are not filtered on.
type FlightFilter struct {
	Dep     string
	Arr     string
	Airline string
	From    *time.Time
	To      *time.Time
}

// FlightVoteRow a flight joined with its vote totals
type FlightVoteRow struct {
	FlightID             string    `gorm:"column:flight_id"`
	AirlineName          string    `gorm:"column:airline_name"`
	Status               string    `gorm:"column:status"`
	ScheduledDeparture   time.Time `gorm:"column:scheduled_departure"`
	ScheduledArrival     time.Time `gorm:"column:scheduled_arrival"`
	DepartureAirportName string    `gorm:"column:departure_airport_name"`
	ArrivalAirportName   string    `gorm:"column:arrival_airport_name"`
	Likes                int64     `gorm:"column:likes"`
	Dislikes             int64     `gorm:"column:dislikes"`
}

type FlightDAO struct {
	Repo[models.Flight]
}

func NewFlightDAO(db *gorm.DB) *FlightDAO {
	return &FlightDAO{Repo: NewRepo[models.Flight](db)}
}

// Search returns at most limit flights matching f, newest departure first,
// each with its like/dislike totals.
func (d *FlightDAO) Search(ctx context.Context, f FlightFilter, limit int) ([]FlightVoteRow, error) {
	rows := make([]FlightVoteRow, 0)

	db := d.Db.WithContext(ctx).
		Table("realtime_flight AS rf").
		Select(`rf.flight_id, rf.airline_name, rf.status, rf.scheduled_departure, rf.scheduled_arrival,
			rf.departure_airport_name, rf.arrival_airport_name,
			COALESCE(SUM(CASE WHEN rv.vote_type = 'like' THEN 1 ELSE 0 END), 0) AS likes,
			COALESCE(SUM(CASE WHEN rv.vote_type = 'dislike' THEN 1 ELSE 0 END), 0) AS dislikes`).
		Joins("LEFT JOIN review_votes rv ON rv.flight_id = rf.flight_id")

	err := ApplyFlightFilter(db, f).
		Group("rf.flight_id, rf.airline_name, rf.status, rf.scheduled_departure, rf.scheduled_arrival, rf.departure_airport_name, rf.arrival_airport_name").
		Order("rf.scheduled_departure DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// ApplyFlightFilter adds one conjunct per set filter. Airports match on code
// or name, airline on name, all as case-insensitive substrings. Date bounds
// select flights whose scheduled window intersects [From, To].
func ApplyFlightFilter(db *gorm.DB, f FlightFilter) *gorm.DB {
	if f.Dep != "" {
		p := likePattern(f.Dep)
		db = db.Where("(LOWER(rf.departure_airport_id) LIKE ? OR LOWER(rf.departure_airport_name) LIKE ?)", p, p)
	}
	if f.Arr != "" {
		p := likePattern(f.Arr)
		db = db.Where("(LOWER(rf.arrival_airport_id) LIKE ? OR LOWER(rf.arrival_airport_name) LIKE ?)", p, p)
	}
	if f.Airline != "" {
		db = db.Where("LOWER(rf.airline_name) LIKE ?", likePattern(f.Airline))
	}
	if f.To != nil {
		db = db.Where("rf.scheduled_departure <= ?", *f.To)
	}
	if f.From != nil {
		db = db.Where("rf.scheduled_arrival >= ?", *f.From)
	}
	return db
}

func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// Exists 航班是否存在
func (d *FlightDAO) Exists(ctx context.Context, flightID string) (bool, error) {
	return d.IsExist(ctx, "flight_id = ?", flightID)
}
