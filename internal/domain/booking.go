package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusOpen       BookingStatus = "open"
	StatusInProgress BookingStatus = "in_progress"
	StatusClosed     BookingStatus = "closed"
	StatusCanceled   BookingStatus = "canceled"
)

// Valid returns true if the status is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed, StatusCanceled:
		return true
	}
	return false
}

// DisplayLabel returns the user-facing label for the status.
// The backend keeps "closed", but operators see it as "ready".
func (s BookingStatus) DisplayLabel() string {
	if s == StatusClosed {
		return "ready"
	}
	return string(s)
}

// Booking represents a scheduled occupation of a bay by a vehicle.
// Снимок записи из FleetService; консоль никогда не мутирует его на месте,
// все изменения уходят в data port и возвращаются новым снимком.
type Booking struct {
	ID               string
	Number           string
	Complaint        *string
	Description      string
	FullbayServiceID *string
	VehicleID        string
	BayID            string
	TechnicianIDs    []string
	CompanyID        string
	Start            time.Time
	End              *time.Time
	Status           BookingStatus
	Notes            string
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EffectiveEnd returns the booking end, defaulting a missing end to
// start + DefaultEventDuration. Display-only: the record itself keeps End nil.
func (b *Booking) EffectiveEnd() time.Time {
	if b.End != nil {
		return *b.End
	}
	return b.Start.Add(DefaultEventDuration)
}

// DisplayNumber returns the human-readable label, falling back to a
// truncated id when the backend did not assign a number.
func (b *Booking) DisplayNumber() string {
	if b.Number != "" {
		return b.Number
	}
	if len(b.ID) > DisplayNumberLength {
		return b.ID[:DisplayNumberLength]
	}
	return b.ID
}

// IsActive returns true if the booking occupies calendar space
func (b *Booking) IsActive() bool {
	for _, status := range ActiveStatuses {
		if b.Status == status {
			return true
		}
	}
	return false
}

// HasTechnician returns true if the technician is assigned to the booking
func (b *Booking) HasTechnician(technicianID string) bool {
	for _, id := range b.TechnicianIDs {
		if id == technicianID {
			return true
		}
	}
	return false
}

// Occupies returns true if the booking interval contains the given instant
func (b *Booking) Occupies(at time.Time) bool {
	return !b.Start.After(at) && b.EffectiveEnd().After(at)
}
