package dialogue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	return NewService(NewSessionStore(), nopLogger{})
}

func turn(intent string, entities ...domain.Entity) *domain.Turn {
	return &domain.Turn{Intent: intent, Entities: entities}
}

func entity(name, value string) domain.Entity {
	return domain.Entity{Entity: name, Value: value}
}

func TestNextAction_Greeting(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentGreeting))

	assert.Equal(t, domain.ActionGreet, action.Name)
	assert.Empty(t, action.Details)
}

func TestNextAction_Bye(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentBye))

	assert.Equal(t, domain.ActionSayGoodbye, action.Name)
}

func TestNextAction_UnknownIntentFallsBack(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn("weather"))

	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_ScheduleComplete(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
		entity("time", "2025-03-03T10:00:00"),
		entity("appointment_type", "checkup"),
	))

	assert.Equal(t, domain.ActionConfirmBooking, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])
	assert.Equal(t, "2025-03-03T10:00:00", action.Details["time"])
	assert.Equal(t, "checkup", action.Details["appointment_type"])
	assert.Empty(t, action.MissingSlots)
}

func TestNextAction_ScheduleSlotFilling(t *testing.T) {
	svc := newTestService()

	// Первый ход: только имя специалиста
	action := svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
	))
	require.Equal(t, domain.ActionRequestInformation, action.Name)
	assert.Equal(t, []string{domain.SlotTime, domain.SlotAppointmentType}, action.MissingSlots)

	// Второй ход: время; интент реплики не важен, важен ожидаемый слот
	action = svc.NextAction("c1", turn("inform",
		entity("time", "2025-03-03T10:00:00"),
	))
	require.Equal(t, domain.ActionRequestInformation, action.Name)
	assert.Equal(t, []string{domain.SlotAppointmentType}, action.MissingSlots)
	// Накопленные детали не теряются между ходами
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])
	assert.Equal(t, "2025-03-03T10:00:00", action.Details["time"])

	// Третий ход: тип приёма, все слоты собраны
	action = svc.NextAction("c1", turn("inform",
		entity("appointment_type", "checkup"),
	))
	require.Equal(t, domain.ActionConfirmBooking, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])
	assert.Equal(t, "2025-03-03T10:00:00", action.Details["time"])
	assert.Equal(t, "checkup", action.Details["appointment_type"])
}

func TestNextAction_PositiveReplyExecutes(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
		entity("time", "2025-03-03T10:00:00"),
		entity("appointment_type", "checkup"),
	))

	action := svc.NextAction("c1", turn(domain.IntentPositiveReply))

	require.Equal(t, domain.ActionExecuteBooking, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])

	// Состояние сброшено: повторное согласие уже ни к чему не относится
	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_NegativeReplyCancels(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentCancel,
		entity("appointment_id", "17"),
	))

	action := svc.NextAction("c1", turn(domain.IntentNegativeReply))

	assert.Equal(t, domain.ActionCancelAction, action.Name)

	// Состояние сброшено
	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_NegativeReplyDuringSlotFilling(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
	))

	// "Нет" во время дозаполнения отменяет весь сбор, а не только подтверждение
	action := svc.NextAction("c1", turn(domain.IntentNegativeReply))
	assert.Equal(t, domain.ActionCancelAction, action.Name)

	// Накопленное стёрто: реплика со временем не возобновляет отменённый запрос
	action = svc.NextAction("c1", turn("inform",
		entity("time", "2025-03-03T10:00:00"),
	))
	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_PositiveReplyDuringSlotFilling(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
	))

	// Согласие при незавершённом сборе возвращает накопленное как есть:
	// ожидающее действие без префикса confirm_ не превращается в execute_*
	action := svc.NextAction("c1", turn(domain.IntentPositiveReply))
	require.Equal(t, domain.IntentSchedule, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])

	// Состояние сброшено
	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_CancelRequiresConfirmation(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentCancel,
		entity("appointment_id", "17"),
	))
	require.Equal(t, domain.ActionConfirmCancellation, action.Name)

	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionExecuteCancellation, action.Name)
	assert.Equal(t, "17", action.Details["appointment_id"])
}

func TestNextAction_RescheduleSlotFilling(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentReschedule,
		entity("appointment_id", "#17"),
	))
	require.Equal(t, domain.ActionRequestInformation, action.Name)
	assert.Equal(t, []string{domain.SlotTime}, action.MissingSlots)

	action = svc.NextAction("c1", turn("inform",
		entity("time", "2025-03-04T11:00:00"),
	))
	require.Equal(t, domain.ActionConfirmReschedule, action.Name)
	assert.Equal(t, "#17", action.Details["appointment_id"])
	assert.Equal(t, "2025-03-04T11:00:00", action.Details["time"])
}

func TestNextAction_QueryAvailabilityImmediate(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentQueryAvail,
		entity("time", "2025-03-03T10:00:00"),
	))

	// Запрос доступности выполняется без подтверждения
	require.Equal(t, domain.ActionExecuteQueryAvail, action.Name)
	assert.Equal(t, "2025-03-03T10:00:00", action.Details["time"])

	// Состояние после немедленного выполнения чистое
	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionFallback, action.Name)
}

func TestNextAction_QueryAvailabilityAsksForTime(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentQueryAvail))
	require.Equal(t, domain.ActionRequestInformation, action.Name)
	assert.Equal(t, []string{domain.SlotTime}, action.MissingSlots)

	action = svc.NextAction("c1", turn("inform",
		entity("time", "2025-03-03T10:00:00"),
	))
	assert.Equal(t, domain.ActionExecuteQueryAvail, action.Name)
}

func TestNextAction_QueryAvailKeepsPendingConfirmation(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
		entity("time", "2025-03-03T10:00:00"),
		entity("appointment_type", "checkup"),
	))

	// Запрос доступности посреди подтверждения выполняется сразу,
	// но чужое ожидающее подтверждение не сбрасывает
	action := svc.NextAction("c1", turn(domain.IntentQueryAvail,
		entity("time", "2025-03-04T11:00:00"),
	))
	require.Equal(t, domain.ActionExecuteQueryAvail, action.Name)

	action = svc.NextAction("c1", turn(domain.IntentPositiveReply))
	assert.Equal(t, domain.ActionExecuteBooking, action.Name)
}

func TestNextAction_UnrelatedIntentKeepsPendingState(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
	))

	// Реплика без ожидаемого слота и с посторонним интентом не сбрасывает сбор
	action := svc.NextAction("c1", turn(domain.IntentGreeting))
	assert.Equal(t, domain.ActionGreet, action.Name)

	// Сбор продолжается с того же места
	action = svc.NextAction("c1", turn("inform",
		entity("time", "2025-03-03T10:00:00"),
	))
	require.Equal(t, domain.ActionRequestInformation, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])
}

func TestNextAction_PersonEntityNormalized(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("person", "Dr. Lee"),
		entity("TIME", "2025-03-03T10:00:00"),
		entity("appointment_type", "checkup"),
	))

	require.Equal(t, domain.ActionConfirmBooking, action.Name)
	assert.Equal(t, "Dr. Lee", action.Details["practitioner_name"])
	assert.Equal(t, "2025-03-03T10:00:00", action.Details["time"])
}

func TestNextAction_DuplicateEntityLastWins(t *testing.T) {
	svc := newTestService()

	action := svc.NextAction("c1", turn(domain.IntentCancel,
		entity("appointment_id", "17"),
		entity("appointment_id", "18"),
	))

	require.Equal(t, domain.ActionConfirmCancellation, action.Name)
	assert.Equal(t, "18", action.Details["appointment_id"])
}

func TestNextAction_ConcurrentTurnsSameConversation(t *testing.T) {
	svc := newTestService()

	// Параллельные ходы одной беседы не должны гонять общее состояние
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.NextAction("c1", turn(domain.IntentSchedule,
				entity("practitioner_name", "Dr. Lee"),
			))
			svc.NextAction("c1", turn("inform",
				entity("time", "2025-03-03T10:00:00"),
			))
		}()
	}
	wg.Wait()

	// После гонки машина остаётся в согласованном состоянии и собирает диалог
	action := svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
		entity("time", "2025-03-03T10:00:00"),
		entity("appointment_type", "checkup"),
	))
	assert.Equal(t, domain.ActionConfirmBooking, action.Name)
}

func TestNextAction_IndependentConversations(t *testing.T) {
	svc := newTestService()

	svc.NextAction("c1", turn(domain.IntentSchedule,
		entity("practitioner_name", "Dr. Lee"),
	))

	// Вторая беседа ничего не знает о первой
	action := svc.NextAction("c2", turn("inform",
		entity("time", "2025-03-03T10:00:00"),
	))
	assert.Equal(t, domain.ActionFallback, action.Name)
}
