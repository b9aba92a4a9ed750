package dto

import "time"

type AppointmentListDTO struct {
	ID            uint      `json:"id"`
	Reference     string    `json:"reference"`
	Date          time.Time `json:"date"`
	Time          string    `json:"time"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	TotalPrice    float64   `json:"total_price"`
	QueuePosition int       `json:"queue_position"`
	VehiclePlate  string    `json:"vehicle_plate"`
	VehicleModel  string    `json:"vehicle_model"`
	CustomerName  string    `json:"customer_name,omitempty"`
	ServiceNames  []string  `json:"service_names"`
}

type AppointmentStatsDTO struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Completed int64 `json:"completed"`
}
