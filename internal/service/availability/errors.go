package availability

import "errors"

var (
	// ErrStore возвращается при сбое хранилища во время проверки
	ErrStore = errors.New("availability: store error")

	// ErrInvalidRules возвращается при некорректных правилах расписания
	ErrInvalidRules = errors.New("availability: invalid schedule rules")
)
