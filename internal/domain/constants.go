package domain

// Форматы даты и времени
const (
	TimeFormat      = "15:04"               // HH:MM
	DateFormat      = "2006-01-02"          // YYYY-MM-DD
	TimestampFormat = "2006-01-02T15:04:05" // абсолютное локальное время без зоны
)

// MaxSlotSuggestions максимум альтернативных слотов в одной подсказке
const MaxSlotSuggestions = 3

// Ограничения конфигурации расписания
const (
	MinSlotDurationMinutes     = 5
	MaxSlotDurationMinutes     = 480 // 8 часов
	MaxMinGapMinutes           = 240
	MaxAppointmentsPerDayLimit = 200
)
