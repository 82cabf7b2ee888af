package dialogue

import (
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ScheduleBot/internal/domain"
)

// session состояние одной беседы вместе с её блокировкой
// Блокировка сериализует ходы беседы: состояние всегда меняет ровно один ход
type session struct {
	mu    sync.Mutex
	state *domain.DialogueState
}

// SessionStore потокобезопасное in-memory хранилище состояний диалогов
// Состояние живёт, пока жив процесс; персистентность сессий не требуется
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// NewSessionStore создает новое хранилище сессий
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
	}
}

// NewConversation создает новую сессию и возвращает её идентификатор
func (s *SessionStore) NewConversation() string {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = &session{state: domain.NewDialogueState()}
	s.mu.Unlock()

	return id
}

// Acquire возвращает состояние сессии, захватив её блокировку
// Параллельные ходы одной беседы обрабатываются строго по одному; вызывающий
// обязан вызвать release после работы с состоянием
// Неизвестный идентификатор не является ошибкой: диалог начинается с чистого состояния
func (s *SessionStore) Acquire(conversationID string) (*domain.DialogueState, func()) {
	sess := s.getOrCreate(conversationID)
	sess.mu.Lock()

	return sess.state, sess.mu.Unlock
}

func (s *SessionStore) getOrCreate(conversationID string) *session {
	s.mu.RLock()
	sess, ok := s.sessions[conversationID]
	s.mu.RUnlock()

	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Повторная проверка: сессию могли создать между RUnlock и Lock
	if sess, ok := s.sessions[conversationID]; ok {
		return sess
	}

	sess = &session{state: domain.NewDialogueState()}
	s.sessions[conversationID] = sess

	return sess
}

// Delete удаляет сессию
func (s *SessionStore) Delete(conversationID string) {
	s.mu.Lock()
	delete(s.sessions, conversationID)
	s.mu.Unlock()
}

// Len возвращает количество активных сессий
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}
