package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência pública usada pelo cliente (não expõe o ID sequencial)
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	VehicleID uint    `gorm:"not null;index" json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"vehicle"`

	// Par (date, time) com unicidade garantida pelo banco:
	// dois clientes nunca reservam o mesmo horário nominal.
	Date time.Time `gorm:"type:date;not null;uniqueIndex:uniq_appointments_date_time" json:"date"`
	Time string    `gorm:"size:5;not null;uniqueIndex:uniq_appointments_date_time" json:"time"`

	Status        string  `gorm:"size:20;default:'pending';index" json:"status"`
	TotalPrice    float64 `json:"total_price"`
	Notes         string  `gorm:"size:500" json:"notes"`
	QueuePosition int     `gorm:"default:1" json:"queue_position"`

	Services []AppointmentService `json:"services"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}

type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null;uniqueIndex:uniq_appointment_service" json:"appointment_id"`

	ServiceID uint    `gorm:"not null;uniqueIndex:uniq_appointment_service" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service"`

	// Preço cobrado no momento da reserva (o catálogo pode mudar depois)
	Price     float64 `json:"price"`
	Completed bool    `gorm:"default:false" json:"completed"`
}

type AppointmentReview struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"not null;uniqueIndex" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}
