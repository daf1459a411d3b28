package reschedule_booking

import "time"

// Request параметры переноса брони (drag или resize на сетке)
type Request struct {
	BookingID string
	Start     time.Time
	End       *time.Time
}
