package calendar

import "errors"

var (
	// ErrUnknownView возвращается при неизвестном режиме календаря
	ErrUnknownView = errors.New("calendar: unknown view mode")
)
