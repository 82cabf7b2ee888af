package process_turn

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("process_turn: invalid input")

	// ErrInternal возвращается при внутренней ошибке
	ErrInternal = errors.New("process_turn: internal error")
)

// errMalformedDetails означает, что собранные в диалоге детали не удалось
// разобрать (кривое время, нечисловой ID). Это не ошибка пайплайна:
// ход завершается действием fallback
var errMalformedDetails = errors.New("process_turn: malformed action details")
