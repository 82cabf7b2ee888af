package reschedule_appointment

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// Request запрос на перенос записи
type Request struct {
	AppointmentID int64
	NewStart      time.Time
}

// Response результат переноса
// Found=false означает, что записи с таким ID нет.
// Success=false с Reason — отказ по бизнес-правилу для нового времени
type Response struct {
	Success     bool
	Found       bool
	Reason      domain.ReasonCode
	StartTime   time.Time
	EndTime     time.Time
	Suggestions []time.Time
}
