package grid

import "errors"

var (
	// ErrRangeFetch возвращается при ошибке загрузки диапазона.
	// Состояние сетки становится error и допускает повторную попытку.
	ErrRangeFetch = errors.New("grid: range fetch failed")

	// ErrEventNotFound возвращается, когда событие отсутствует в текущем диапазоне
	ErrEventNotFound = errors.New("grid: event not found in current range")

	// ErrInvalidSpan возвращается, когда конец интервала не позже начала
	ErrInvalidSpan = errors.New("grid: span end must be after start")
)
