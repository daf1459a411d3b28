package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена в текущем
	// диапазоне сетки
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found in current range")

	// ErrInvalidSpan возвращается, когда новый конец не позже нового начала
	ErrInvalidSpan = errors.New("reschedule_booking: end must be after start")

	// ErrWriteFailed возвращается, когда FleetService не принял перенос.
	// Событие остаётся на прежнем месте: локальное состояние не менялось.
	ErrWriteFailed = errors.New("reschedule_booking: write failed")
)
