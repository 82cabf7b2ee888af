package types

import (
	"fmt"
	"time"
)

// TimeFormat формат времени HH:MM (24 часа)
const TimeFormat = "15:04"

// TimeString время в формате "HH:MM" (например, "10:30")
// Используется для времени в рамках одного дня: рабочие часы, обеденный перерыв, начало слота
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("invalid time string format: %v", err)
	}
	return nil
}

// IsZero проверяет, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

func (t TimeString) String() string {
	return string(t)
}

// IsBefore проверяет, что время строго раньше other
// Лексикографическое сравнение корректно для формата HH:MM с ведущими нулями
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает время через m минут (в пределах суток, по модулю 24 часа)
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %v", err)
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(TimeFormat)), nil
}

// OnDate возвращает абсолютный момент времени: дата из date, часы и минуты из t
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time string format: %v", err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}
