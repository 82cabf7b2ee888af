package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromSlots конвертирует список времён начала в HTTP response
func FromSlots(date time.Time, slots []time.Time) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]string, 0, len(slots)),
	}

	for _, s := range slots {
		out.Slots = append(out.Slots, s.Format(domain.TimestampFormat))
	}

	return out
}
