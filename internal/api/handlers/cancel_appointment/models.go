package cancel_appointment

// CancelAppointmentResponse HTTP response model
// Отмена идемпотентна: found=false означает, что записи с таким ID не было,
// но операция всё равно считается успешной
type CancelAppointmentResponse struct {
	Success bool `json:"success"`
	Found   bool `json:"found"`
}
