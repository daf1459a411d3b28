package domain

import "time"

// ViewMode режим календаря. Закрытое перечисление: диапазон считается
// тотальным switch-ом по этим значениям.
type ViewMode string

const (
	ViewDay    ViewMode = "day"
	ViewWeek   ViewMode = "week"
	ViewMonth  ViewMode = "month"
	ViewAgenda ViewMode = "agenda"
)

// ParseViewMode парсит режим календаря из строки запроса
func ParseViewMode(s string) (ViewMode, bool) {
	switch ViewMode(s) {
	case ViewDay, ViewWeek, ViewMonth, ViewAgenda:
		return ViewMode(s), true
	}
	return "", false
}

// TimeRange полуоткрытый интервал [From, To). Инвариант: To > From.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains returns true if the instant falls inside the range
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Duration returns the length of the range
func (r TimeRange) Duration() time.Duration {
	return r.To.Sub(r.From)
}

// Equal returns true if both boundaries match exactly
func (r TimeRange) Equal(other TimeRange) bool {
	return r.From.Equal(other.From) && r.To.Equal(other.To)
}

// IsZero returns true if the range was never computed
func (r TimeRange) IsZero() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// CalendarEvent производное представление брони для календарной сетки.
// Пересобирается при каждой загрузке диапазона и никогда не сохраняется.
// Инвариант: End > Start (после подстановки DefaultEventDuration).
type CalendarEvent struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	Source *Booking // обратная ссылка на исходную запись
}

// EventFilter активные фильтры календаря. Пустое значение означает, что фильтр выключен.
type EventFilter struct {
	BayID        string
	TechnicianID string
	CompanyID    string
}

// IsZero returns true if no filter is active
func (f EventFilter) IsZero() bool {
	return f.BayID == "" && f.TechnicianID == "" && f.CompanyID == ""
}

// Matches returns true if the booking passes every active filter
func (f EventFilter) Matches(b *Booking) bool {
	if f.BayID != "" && b.BayID != f.BayID {
		return false
	}
	if f.CompanyID != "" && b.CompanyID != f.CompanyID {
		return false
	}
	if f.TechnicianID != "" && !b.HasTechnician(f.TechnicianID) {
		return false
	}
	return true
}
