package domain

// Интенты, приходящие от NLU-модуля
const (
	IntentGreeting      = "greeting"
	IntentBye           = "bye"
	IntentSchedule      = "schedule"
	IntentReschedule    = "reschedule"
	IntentCancel        = "cancel"
	IntentQueryAvail    = "query_avail"
	IntentPositiveReply = "positive_reply"
	IntentNegativeReply = "negative_reply"
)

// Имена слотов диалога
// Неизвестные имена сущностей сохраняются как есть: машина их не требует, но и не теряет
const (
	SlotPractitionerName = "practitioner_name"
	SlotTime             = "time"
	SlotAppointmentType  = "appointment_type"
	SlotAppointmentID    = "appointment_id"
)

// Имена действий, которые машина состояний отдаёт оркестратору и NLG
const (
	ActionGreet               = "greet"
	ActionSayGoodbye          = "say_goodbye"
	ActionConfirmBooking      = "confirm_booking"
	ActionConfirmReschedule   = "confirm_reschedule"
	ActionConfirmCancellation = "confirm_cancellation"
	ActionRequestInformation  = "request_information"
	ActionExecuteBooking      = "execute_booking"
	ActionExecuteReschedule   = "execute_reschedule"
	ActionExecuteCancellation = "execute_cancellation"
	ActionExecuteQueryAvail   = "execute_query_avail"
	ActionCancelAction        = "cancel_action"
	ActionSuggestSlots        = "suggest_slots"
	ActionFallback            = "fallback"
)

// Префиксы действий подтверждения и выполнения
const (
	ConfirmActionPrefix = "confirm_"
	ExecuteActionPrefix = "execute_"
)

// Обязательные слоты для каждого интента
// Порядок фиксированный и определяет порядок дозапроса недостающей информации
var (
	ScheduleRequiredSlots   = []string{SlotPractitionerName, SlotTime, SlotAppointmentType}
	RescheduleRequiredSlots = []string{SlotAppointmentID, SlotTime}
	CancelRequiredSlots     = []string{SlotAppointmentID}
)

// Entity именованное значение, извлечённое NLU из фразы пользователя
type Entity struct {
	Entity string
	Value  string
}

// Turn один структурированный ход пользователя: интент плюс извлечённые сущности
type Turn struct {
	Intent   string
	Entities []Entity
}

// Action структурированное действие для NLG и оркестратора
// После создания не изменяется
type Action struct {
	Name         string
	Details      map[string]string
	MissingSlots []string
}

// DialogueState состояние одного диалога
// Изменяется строго одним потоком за раз: ходы одной беседы сериализует
// блокировка сессии в хранилище, внутренних блокировок здесь нет
type DialogueState struct {
	PendingAction  string            // действие, ожидающее подтверждения или дозаполнения
	PendingDetails map[string]string // накопленные за ходы детали
	AwaitingSlot   string            // единственный слот, которого ждёт машина
}

// NewDialogueState создает пустое состояние диалога
func NewDialogueState() *DialogueState {
	return &DialogueState{
		PendingDetails: make(map[string]string),
	}
}

// Reset сбрасывает состояние диалога в исходное
func (s *DialogueState) Reset() {
	s.PendingAction = ""
	s.PendingDetails = make(map[string]string)
	s.AwaitingSlot = ""
}
