package notify

// AppointmentStatusChanged é o evento emitido após toda mudança de status
// de agendamento. O núcleo apenas publica o evento; a entrega é melhor
// esforço e nunca condiciona a mudança de status.
type AppointmentStatusChanged struct {
	AppointmentID uint   `json:"appointment_id"`
	UserID        uint   `json:"user_id"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	Message       string `json:"message"`
}
