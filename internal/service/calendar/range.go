package calendar

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

// weekStart неделя начинается с воскресенья (соглашение цеха)
const weekStart = time.Sunday

// StartOfDay returns midnight of the reference's calendar day in loc
func StartOfDay(reference time.Time, loc *time.Location) time.Time {
	local := reference.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ComputeRange вычисляет полуоткрытый интервал [from, to) для режима
// календаря. Все границы выровнены на местную полночь, agenda включительно.
//
//   - day:    начало суток reference .. +1 день
//   - week:   начало недели (воскресенье) .. +7 дней
//   - month:  первое число месяца .. первое число следующего месяца
//   - agenda: открытое окно, −7 дней .. +30 дней от начала суток reference
func ComputeRange(reference time.Time, view domain.ViewMode, loc *time.Location) (domain.TimeRange, error) {
	if loc == nil {
		loc = time.Local
	}

	switch view {
	case domain.ViewDay:
		from := StartOfDay(reference, loc)
		return domain.TimeRange{From: from, To: from.AddDate(0, 0, 1)}, nil

	case domain.ViewWeek:
		dayStart := StartOfDay(reference, loc)
		back := int(dayStart.Weekday() - weekStart)
		if back < 0 {
			back += 7
		}
		from := dayStart.AddDate(0, 0, -back)
		return domain.TimeRange{From: from, To: from.AddDate(0, 0, 7)}, nil

	case domain.ViewMonth:
		local := reference.In(loc)
		from := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		// AddDate переносит год сам: декабрь -> январь следующего года
		return domain.TimeRange{From: from, To: from.AddDate(0, 1, 0)}, nil

	case domain.ViewAgenda:
		dayStart := StartOfDay(reference, loc)
		return domain.TimeRange{
			From: dayStart.AddDate(0, 0, -domain.AgendaDaysBack),
			To:   dayStart.AddDate(0, 0, domain.AgendaDaysForward),
		}, nil
	}

	return domain.TimeRange{}, ErrUnknownView
}
