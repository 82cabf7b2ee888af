package book_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// Request запрос на создание записи
type Request struct {
	PractitionerName string
	AppointmentType  string
	Start            time.Time
}

// Response результат попытки бронирования
// Success=false с заполненным Reason — это штатный отказ по бизнес-правилу,
// а не ошибка: ошибкой считается только сбой хранилища
type Response struct {
	Success       bool
	Reason        domain.ReasonCode
	AppointmentID int64
	Summary       string
	StartTime     time.Time
	EndTime       time.Time
	Suggestions   []time.Time
}
