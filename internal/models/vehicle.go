package models

import "time"

// Categorias de veículo aceitas no cadastro.
var VehicleCategories = []string{
	"sedan",
	"hatch",
	"suv",
	"pickup",
	"van",
	"motorcycle",
	"other",
}

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Brand    string `gorm:"size:50;not null" json:"brand"`
	Model    string `gorm:"size:50;not null" json:"model"`
	Year     int    `json:"year"`
	Color    string `gorm:"size:30" json:"color"`
	Plate    string `gorm:"size:10;uniqueIndex;not null" json:"plate"`
	Category string `gorm:"size:20;default:'sedan'" json:"category"`
	Mileage  *int   `json:"mileage"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func IsValidVehicleCategory(category string) bool {
	for _, c := range VehicleCategories {
		if c == category {
			return true
		}
	}
	return false
}
