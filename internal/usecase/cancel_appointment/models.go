package cancel_appointment

// Request запрос на отмену записи
type Request struct {
	AppointmentID int64
}

// Response результат отмены
// Found=false означает, что записи с таким ID не было; операция при этом
// считается успешной, отмена идемпотентна
type Response struct {
	Found bool
}
