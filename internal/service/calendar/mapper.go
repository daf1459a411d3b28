package calendar

import (
	"strings"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// Lookups денормализованные справочники для сборки заголовков событий.
// Справочники eventually consistent: отсутствующая запись даёт пустой
// сегмент заголовка, а не ошибку.
type Lookups struct {
	Vehicles    map[string]*domain.Vehicle
	Bays        map[string]*domain.Bay
	Technicians map[string]*domain.Technician
}

// VehicleLabel returns the plate/VIN label or "" when the lookup is missing
func (l Lookups) VehicleLabel(id string) string {
	if v, ok := l.Vehicles[id]; ok {
		return v.DisplayLabel()
	}
	return ""
}

// BayName returns the bay name or "" when the lookup is missing
func (l Lookups) BayName(id string) string {
	if b, ok := l.Bays[id]; ok {
		return b.Name
	}
	return ""
}

// TechnicianNames returns known technician names in assignment order
func (l Lookups) TechnicianNames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := l.Technicians[id]; ok && t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// MapEvents проецирует брони в события календаря.
// Фильтрация предшествует маппингу; порядок событий повторяет порядок
// входных записей, сортировку (если нужна) делает сетка. Записи броней
// не мутируются: отсутствующий end подставляется только в событие.
func MapEvents(bookings []*domain.Booking, lookups Lookups, filter domain.EventFilter) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(bookings))
	for _, b := range bookings {
		if !filter.Matches(b) {
			continue
		}
		events = append(events, domain.CalendarEvent{
			ID:     b.ID,
			Title:  ComposeTitle(b, lookups),
			Start:  b.Start,
			End:    b.EffectiveEnd(),
			Source: b,
		})
	}
	return events
}

// ComposeTitle собирает заголовок события: механики, госномер/VIN, бокс.
// Пустые сегменты отбрасываются.
func ComposeTitle(b *domain.Booking, lookups Lookups) string {
	segments := make([]string, 0, 3)
	if names := lookups.TechnicianNames(b.TechnicianIDs); len(names) > 0 {
		segments = append(segments, strings.Join(names, ", "))
	}
	if label := lookups.VehicleLabel(b.VehicleID); label != "" {
		segments = append(segments, label)
	}
	if name := lookups.BayName(b.BayID); name != "" {
		segments = append(segments, name)
	}
	return strings.Join(segments, domain.TitleDelimiter)
}
