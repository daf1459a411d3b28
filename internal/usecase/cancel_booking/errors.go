package cancel_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена в FleetService
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrWriteFailed возвращается, когда FleetService не принял отмену
	ErrWriteFailed = errors.New("cancel_booking: write failed")
)
