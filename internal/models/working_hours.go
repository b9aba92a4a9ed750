package models

import "time"

// WorkingHours descreve o expediente de um dia da semana.
// Weekday segue a convenção do Go (0=domingo ... 6=sábado).
type WorkingHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday   int    `gorm:"uniqueIndex;not null" json:"weekday"`
	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`
	IsOpen    bool   `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Holiday struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Recurring bool      `gorm:"default:false" json:"recurring"`

	CreatedAt time.Time `json:"created_at"`
}
