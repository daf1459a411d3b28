package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронь не найдена в FleetService
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrWriteFailed возвращается, когда FleetService не принял запись.
	// Форма остаётся открытой для исправления и повтора.
	ErrWriteFailed = errors.New("update_booking: write failed")
)
