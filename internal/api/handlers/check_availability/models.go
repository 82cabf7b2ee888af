package check_availability

import (
	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	queryAvailability "github.com/m04kA/SMC-ScheduleBot/internal/usecase/query_availability"
)

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available   bool     `json:"available"`
	Reason      string   `json:"reason,omitempty"`
	StartTime   string   `json:"startTime"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *queryAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		Available: resp.Available,
		StartTime: resp.StartTime.Format(domain.TimestampFormat),
	}

	if !resp.Available {
		out.Reason = string(resp.Reason)
		for _, s := range resp.Suggestions {
			out.Suggestions = append(out.Suggestions, s.Format(domain.TimestampFormat))
		}
	}

	return out
}
