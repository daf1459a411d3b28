package lookups

import "errors"

var (
	// ErrUnknownKind возвращается при неизвестном виде справочника
	ErrUnknownKind = errors.New("lookups: unknown lookup kind")

	// ErrRefreshFailed возвращается, когда ни один справочник не удалось обновить
	ErrRefreshFailed = errors.New("lookups: refresh failed")
)
