package grid

import (
	"time"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

// Геометрия выпадающего меню переполнения (px)
const (
	menuWidth        = 320
	menuMargin       = 20 // минимальный отступ от правого края окна
	menuAnchorOffset = 8  // отступ меню под якорной ячейкой
)

// overflowCellsLocked собирает ячейки месячного представления, где событий
// больше, чем помещается. Вызывается под мьютексом.
func (c *Controller) overflowCellsLocked() []models.OverflowCell {
	byDay := make(map[string][]string)
	order := make([]string, 0)
	for _, e := range c.events {
		day := e.Start.In(c.loc).Format(domain.DateFormat)
		if _, seen := byDay[day]; !seen {
			order = append(order, day)
		}
		byDay[day] = append(byDay[day], e.ID)
	}

	var cells []models.OverflowCell
	for _, day := range order {
		ids := byDay[day]
		if len(ids) <= maxVisiblePerDayCell {
			continue
		}
		cells = append(cells, models.OverflowCell{
			Date:   day,
			Total:  len(ids),
			Hidden: ids[maxVisiblePerDayCell:],
		})
	}
	return cells
}

// OpenOverflow открывает меню скрытых событий дня вместо встроенного
// drill-down. Горизонтальная позиция зажимается так, чтобы меню целиком
// оставалось в окне. Повторное открытие заменяет уже открытое меню:
// для одной сетки меню всегда не больше одного.
func (c *Controller) OpenOverflow(date time.Time, anchor models.Rect, viewport models.Size) (models.MenuState, error) {
	day := date.In(c.loc)
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, c.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.MenuItem, 0)
	for _, e := range c.events {
		if e.Start.Before(dayStart) || !e.Start.Before(dayEnd) {
			continue
		}
		items = append(items, models.MenuItem{
			BookingID: e.ID,
			Title:     e.Title,
			TimeLabel: e.Start.In(c.loc).Format(domain.TimeFormat) + " — " + e.End.In(c.loc).Format(domain.TimeFormat),
			Number:    e.Source.DisplayNumber(),
		})
	}

	left := anchor.Left
	if maxLeft := viewport.Width - menuWidth - menuMargin; left > maxLeft {
		left = maxLeft
	}

	c.menu = models.MenuState{
		Open:  true,
		Date:  dayStart.Format(domain.DateFormat),
		Top:   anchor.Bottom + menuAnchorOffset,
		Left:  left,
		Width: menuWidth,
		Title: "Day events",
		Items: items,
	}
	if len(items) == 0 {
		c.menu.Placeholder = "No events"
	}
	return c.menu, nil
}

// OverflowMenu возвращает текущее состояние меню переполнения
func (c *Controller) OverflowMenu() models.MenuState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.menu
}

// CloseOverflow закрывает меню (явное закрытие или клик вне меню)
func (c *Controller) CloseOverflow() {
	c.mu.Lock()
	c.menu = models.MenuState{}
	c.mu.Unlock()
}

// SelectOverflowItem выбирает событие из меню: меню закрывается, открывается
// форма редактирования выбранной брони
func (c *Controller) SelectOverflowItem(bookingID string) (models.Draft, error) {
	c.CloseOverflow()
	return c.SelectEvent(bookingID)
}
