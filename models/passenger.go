package models

import (
	"time"
)

type Passenger struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`

	FullName    string     `json:"fullName"`
	IDNumber    string     `json:"idNumber"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Nationality string     `json:"nationality"`
}
