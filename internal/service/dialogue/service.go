package dialogue

import (
	"strings"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// Service машина состояний диалога: по распознанной реплике и состоянию
// беседы определяет следующее действие бота
type Service struct {
	sessions *SessionStore
	logger   Logger
}

// NewService создает новый экземпляр диалогового сервиса
func NewService(sessions *SessionStore, logger Logger) *Service {
	return &Service{
		sessions: sessions,
		logger:   logger,
	}
}

// NewConversation открывает новую беседу и возвращает её идентификатор
func (s *Service) NewConversation() string {
	id := s.sessions.NewConversation()
	s.logger.Info("Dialogue: started conversation %s", id)

	return id
}

// NextAction обрабатывает одну реплику пользователя и возвращает следующее действие
//
// Порядок обработки фиксированный:
// 1. Дозаполнение слота: если бот ждал слот и реплика его содержит,
// сущности реплики сливаются с накопленными и исходное намерение
// обрабатывается заново уже с полным набором
// 2. Ответ на любое ожидающее действие: положительный превращает confirm_*
// в execute_*, отрицательный отменяет накопленное и сбрасывает состояние
// 3. Диспетчеризация по намерению реплики
//
// Ходы одной беседы сериализуются блокировкой её сессии
func (s *Service) NextAction(conversationID string, turn *domain.Turn) *domain.Action {
	state, release := s.sessions.Acquire(conversationID)
	defer release()

	intent := turn.Intent
	entities := normalizeEntities(turn.Entities)

	// 1. Дозаполнение ожидаемого слота
	if state.AwaitingSlot != "" {
		if _, ok := entities[state.AwaitingSlot]; ok {
			for slot, value := range entities {
				state.PendingDetails[slot] = value
			}
			intent = state.PendingAction
			entities = copyDetails(state.PendingDetails)
			state.AwaitingSlot = ""
		}
	}

	// 2. Ответ на ожидающее действие: проверка идёт по любому PendingAction,
	// а не только по confirm_*, чтобы "нет" во время дозаполнения тоже
	// отменяло сбор; для действий без префикса confirm_ замена ничего не меняет
	if state.PendingAction != "" {
		switch intent {
		case domain.IntentPositiveReply:
			action := &domain.Action{
				Name:    strings.Replace(state.PendingAction, domain.ConfirmActionPrefix, domain.ExecuteActionPrefix, 1),
				Details: copyDetails(state.PendingDetails),
			}
			state.Reset()

			return action
		case domain.IntentNegativeReply:
			state.Reset()

			return &domain.Action{Name: domain.ActionCancelAction, Details: map[string]string{}}
		}
	}

	// 3. Диспетчеризация по намерению
	switch intent {
	case domain.IntentGreeting:
		return &domain.Action{Name: domain.ActionGreet, Details: map[string]string{}}

	case domain.IntentBye:
		return &domain.Action{Name: domain.ActionSayGoodbye, Details: map[string]string{}}

	case domain.IntentSchedule:
		return s.collectOrConfirm(state, intent, entities,
			domain.ScheduleRequiredSlots, domain.ActionConfirmBooking)

	case domain.IntentReschedule:
		return s.collectOrConfirm(state, intent, entities,
			domain.RescheduleRequiredSlots, domain.ActionConfirmReschedule)

	case domain.IntentCancel:
		return s.collectOrConfirm(state, intent, entities,
			domain.CancelRequiredSlots, domain.ActionConfirmCancellation)

	case domain.IntentQueryAvail:
		// Запрос доступности не требует подтверждения и выполняется сразу
		if _, ok := entities[domain.SlotTime]; !ok {
			state.PendingAction = intent
			state.PendingDetails = copyDetails(entities)
			state.AwaitingSlot = domain.SlotTime

			return &domain.Action{
				Name:         domain.ActionRequestInformation,
				Details:      copyDetails(entities),
				MissingSlots: []string{domain.SlotTime},
			}
		}
		// Собственный сбор завершён и сбрасывается; чужое ожидающее
		// подтверждение запрос доступности не трогает
		if state.PendingAction == domain.IntentQueryAvail {
			state.Reset()
		}

		return &domain.Action{Name: domain.ActionExecuteQueryAvail, Details: copyDetails(entities)}
	}

	// Нераспознанное намерение не трогает накопленное состояние
	return &domain.Action{Name: domain.ActionFallback, Details: map[string]string{}}
}

// collectOrConfirm общий шаг сбора слотов для намерений, требующих подтверждения
// Если все обязательные слоты заполнены, переводит диалог в ожидание
// подтверждения, иначе запрашивает первый недостающий слот
func (s *Service) collectOrConfirm(state *domain.DialogueState, intent string, entities map[string]string, required []string, confirmAction string) *domain.Action {
	missing := missingSlots(required, entities)

	if len(missing) > 0 {
		state.PendingAction = intent
		state.PendingDetails = copyDetails(entities)
		state.AwaitingSlot = missing[0]

		return &domain.Action{
			Name:         domain.ActionRequestInformation,
			Details:      copyDetails(entities),
			MissingSlots: missing,
		}
	}

	state.PendingAction = confirmAction
	state.PendingDetails = copyDetails(entities)
	state.AwaitingSlot = ""

	return &domain.Action{
		Name:    confirmAction,
		Details: copyDetails(entities),
	}
}

// missingSlots возвращает обязательные слоты, отсутствующие среди сущностей,
// сохраняя порядок из required
func missingSlots(required []string, entities map[string]string) []string {
	missing := make([]string, 0, len(required))
	for _, slot := range required {
		if _, ok := entities[slot]; !ok {
			missing = append(missing, slot)
		}
	}

	return missing
}

// normalizeEntities приводит список сущностей к карте слот -> значение
// Имена слотов приводятся к нижнему регистру, "person" считается синонимом
// "practitioner_name"; при повторе слота побеждает последнее значение
func normalizeEntities(entities []domain.Entity) map[string]string {
	normalized := make(map[string]string, len(entities))
	for _, e := range entities {
		name := strings.ToLower(strings.TrimSpace(e.Entity))
		if name == "person" {
			name = domain.SlotPractitionerName
		}
		if name == "" {
			continue
		}
		normalized[name] = e.Value
	}

	return normalized
}

// copyDetails копирует карту слотов, чтобы состояние сессии и действия
// не делили одну карту
func copyDetails(details map[string]string) map[string]string {
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}

	return cp
}
