package models

import "time"

type ServiceCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	Category   ServiceCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"category"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Active      bool    `gorm:"default:true" json:"active"`

	// Aplicabilidade por tipo de veículo
	AppliesSedan      bool `gorm:"default:true" json:"applies_sedan"`
	AppliesSUV        bool `gorm:"default:true" json:"applies_suv"`
	AppliesPickup     bool `gorm:"default:true" json:"applies_pickup"`
	AppliesMotorcycle bool `gorm:"default:false" json:"applies_motorcycle"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailableForVehicle informa se o serviço atende a categoria do veículo.
// Hatch segue as regras de sedan; van segue as regras de pickup.
func (s *Service) AvailableForVehicle(category string) bool {
	switch category {
	case "sedan", "hatch":
		return s.AppliesSedan
	case "suv":
		return s.AppliesSUV
	case "pickup", "van":
		return s.AppliesPickup
	case "motorcycle":
		return s.AppliesMotorcycle
	default:
		return true
	}
}

type ServiceImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Path    string `gorm:"size:255;not null" json:"path"`
	Caption string `gorm:"size:200" json:"caption"`
	Primary bool   `gorm:"default:false" json:"primary"`

	CreatedAt time.Time `json:"created_at"`
}
