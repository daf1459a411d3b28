package fleetservice

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронь не найдена в FleetService
	ErrBookingNotFound = errors.New("fleetservice client: booking not found")

	// ErrBadRequest возвращается, когда FleetService отклонил запрос как некорректный
	ErrBadRequest = errors.New("fleetservice client: bad request")

	// ErrConflict возвращается при конфликте статусов (например, закрытие отменённой брони)
	ErrConflict = errors.New("fleetservice client: conflict")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("fleetservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("fleetservice client: invalid response")

	// ErrUnavailable возвращается, когда FleetService недоступен (сеть, timeout)
	ErrUnavailable = errors.New("fleetservice client: service unavailable")
)
