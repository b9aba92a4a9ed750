package models

import "time"

type InventoryItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Unit        string `gorm:"size:20;default:'un'" json:"unit"`

	Quantity    int `gorm:"default:0" json:"quantity"`
	MinQuantity int `gorm:"default:0" json:"min_quantity"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.MinQuantity
}
