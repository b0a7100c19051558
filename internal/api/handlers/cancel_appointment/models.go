package cancel_appointment

// CancelAppointmentResponse подтверждение отмены записи
type CancelAppointmentResponse struct {
	Message string `json:"message"`
}
