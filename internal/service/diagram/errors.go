package diagram

import "errors"

var (
	// ErrSnapshotUnavailable возвращается, когда снимок занятости ещё не
	// загружен и FleetService недоступен
	ErrSnapshotUnavailable = errors.New("diagram: occupancy snapshot unavailable")
)
