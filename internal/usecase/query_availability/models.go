package query_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// Request запрос проверки доступности времени
type Request struct {
	Start time.Time
}

// Response результат проверки
type Response struct {
	Available   bool
	Reason      domain.ReasonCode
	StartTime   time.Time
	Suggestions []time.Time
}
