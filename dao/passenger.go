package dao

import (
	"Skyline/models"
	"context"

	"gorm.io/gorm"
)

type PassengerDAO struct {
	Repo[models.Passenger]
}

func NewPassengerDAO(db *gorm.DB) *PassengerDAO {
	return &PassengerDAO{Repo: NewRepo[models.Passenger](db)}
}

func (d *PassengerDAO) FindByEmail(ctx context.Context, email string) (*models.Passenger, error) {
	return d.FindOne(ctx, "email = ?", email)
}

func (d *PassengerDAO) FindByID(ctx context.Context, id uint) (*models.Passenger, error) {
	return d.FindOne(ctx, "passenger_id = ?", id)
}
