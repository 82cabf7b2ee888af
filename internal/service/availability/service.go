package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
	"github.com/m04kA/SMC-ScheduleBot/pkg/types"
)

// Service движок проверки доступности: применяет бизнес-правила расписания
// к кандидатному слоту и подбирает альтернативные слоты
type Service struct {
	repo   AppointmentRepository
	rules  *domain.ScheduleRules
	logger Logger
}

// NewService создает новый экземпляр движка доступности
func NewService(repo AppointmentRepository, rules *domain.ScheduleRules, logger Logger) *Service {
	return &Service{
		repo:   repo,
		rules:  rules,
		logger: logger,
	}
}

// CheckAvailability проверяет, может ли новая запись занять интервал [start, start+slotDuration)
//
// Правила применяются в фиксированном порядке, проверка останавливается на
// первом нарушении — порядок определяет, какая причина будет в ответе:
// нерабочий день -> дневной лимит -> рабочие часы -> обед -> занятый слот -> минимальный интервал.
// Нарушение правила — это не ошибка: error возвращается только при сбое хранилища
func (s *Service) CheckAvailability(ctx context.Context, start time.Time) (domain.ReasonCode, error) {
	end := start.Add(s.rules.SlotDuration())

	// 1. Нерабочий день
	if s.rules.IsNonWorkingDay(start.Weekday()) {
		return domain.ReasonNonWorkingDay, nil
	}

	// 2. Дневной лимит записей
	count, err := s.repo.CountByDate(ctx, start)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to count appointments for %s: %v",
			start.Format(domain.DateFormat), err)
		return domain.ReasonStoreError, fmt.Errorf("%w: count by date: %v", ErrStore, err)
	}
	if count >= s.rules.MaxAppointmentsPerDay {
		return domain.ReasonDailyLimitReached, nil
	}

	// 3. Рабочие часы
	// Слот, переходящий через полночь, всегда вне рабочих часов:
	// у такого слота время конца не позже времени начала
	startOfDay := types.NewTimeString(start)
	endOfDay := types.NewTimeString(end)
	if !endOfDay.IsAfter(startOfDay) {
		return domain.ReasonOutsideWorkingHours, nil
	}
	if startOfDay.IsBefore(s.rules.WorkingHours.Start) || endOfDay.IsAfter(s.rules.WorkingHours.End) {
		return domain.ReasonOutsideWorkingHours, nil
	}

	// 4. Обеденный перерыв
	if s.rules.LunchBreak.Intersects(startOfDay, endOfDay) {
		return domain.ReasonDuringLunchBreak, nil
	}

	// 5. Пересечение с существующими записями
	overlapping, err := s.repo.ListOverlapping(ctx, start, end)
	if err != nil {
		s.logger.Error("CheckAvailability: failed to list overlapping appointments: %v", err)
		return domain.ReasonStoreError, fmt.Errorf("%w: list overlapping: %v", ErrStore, err)
	}
	if len(overlapping) > 0 {
		return domain.ReasonSlotBooked, nil
	}

	// 6. Минимальный интервал: повторяем проверку пересечения для расширенного
	// интервала [start-minGap, end+minGap)
	widened, err := s.repo.ListOverlapping(ctx, start.Add(-s.rules.MinGap()), end.Add(s.rules.MinGap()))
	if err != nil {
		s.logger.Error("CheckAvailability: failed to list appointments within min gap: %v", err)
		return domain.ReasonStoreError, fmt.Errorf("%w: list within min gap: %v", ErrStore, err)
	}
	if len(widened) > 0 {
		return domain.ReasonMinGapViolation, nil
	}

	return domain.ReasonAvailable, nil
}

// FindAvailableSlots возвращает до MaxSlotSuggestions свободных времён начала на указанную дату
// Используется для подсказок после отказа в бронировании
func (s *Service) FindAvailableSlots(ctx context.Context, date time.Time) ([]time.Time, error) {
	return s.collectSlots(ctx, date, domain.MaxSlotSuggestions)
}

// ListDaySlots возвращает все свободные времена начала на указанную дату
func (s *Service) ListDaySlots(ctx context.Context, date time.Time) ([]time.Time, error) {
	return s.collectSlots(ctx, date, 0)
}

// collectSlots перебирает кандидатов от начала рабочего дня с шагом slotDuration,
// каждый проверяется полным набором правил CheckAvailability
// limit <= 0 означает без ограничения
func (s *Service) collectSlots(ctx context.Context, date time.Time, limit int) ([]time.Time, error) {
	current, err := s.rules.WorkingHours.Start.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: working hours start: %v", ErrInvalidRules, err)
	}
	closeAt, err := s.rules.WorkingHours.End.OnDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: working hours end: %v", ErrInvalidRules, err)
	}

	slots := make([]time.Time, 0)
	for current.Before(closeAt) {
		if limit > 0 && len(slots) >= limit {
			break
		}

		reason, err := s.CheckAvailability(ctx, current)
		if err != nil {
			return nil, err
		}
		if reason == domain.ReasonAvailable {
			slots = append(slots, current)
		}
		current = current.Add(s.rules.SlotDuration())
	}

	return slots, nil
}
