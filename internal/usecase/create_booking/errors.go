package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrWriteFailed возвращается, когда FleetService не принял запись.
	// Форма остаётся открытой для исправления и повтора.
	ErrWriteFailed = errors.New("create_booking: write failed")
)
