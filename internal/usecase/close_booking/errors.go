package close_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена в FleetService
	ErrBookingNotFound = errors.New("close_booking: booking not found")

	// ErrWriteFailed возвращается, когда FleetService не принял закрытие
	ErrWriteFailed = errors.New("close_booking: write failed")
)
