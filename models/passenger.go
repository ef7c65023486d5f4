package models

// Passenger registered user
type Passenger struct {
	PassengerID uint   `gorm:"column:passenger_id;primaryKey;autoIncrement" json:"passenger_id"`
	Name        string `gorm:"column:name;size:128;not null" json:"name"`
	Email       string `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password    string `gorm:"column:password;size:255;not null" json:"-"`
}

func (Passenger) TableName() string {
	return "passenger"
}
