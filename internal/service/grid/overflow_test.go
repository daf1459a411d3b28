package grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
)

func crowdedDay() (time.Time, []*domain.Booking) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	bookings := make([]*domain.Booking, 0, 5)
	for i := 0; i < 5; i++ {
		bookings = append(bookings, booking(
			string(rune('a'+i)),
			day.Add(time.Duration(9+i)*time.Hour),
		))
	}
	return day, bookings
}

func TestSnapshot_OverflowCells(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	snap := c.Snapshot()
	require.Len(t, snap.Overflow, 1)

	cell := snap.Overflow[0]
	assert.Equal(t, "2024-03-15", cell.Date)
	assert.Equal(t, 5, cell.Total)
	// Первые три события видимы, остальные сворачиваются в "+2 more"
	assert.Equal(t, []string{"d", "e"}, cell.Hidden)
}

func TestSnapshot_NoOverflowOutsideMonthView(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.SetView(context.Background(), domain.ViewWeek))
	require.NoError(t, c.Navigate(context.Background(), day))

	snap := c.Snapshot()
	assert.Empty(t, snap.Overflow)
}

func TestOpenOverflow_ItemsAndPosition(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	anchor := models.Rect{Left: 100, Top: 200, Right: 220, Bottom: 260}
	viewport := models.Size{Width: 1440, Height: 900}

	menu, err := c.OpenOverflow(day, anchor, viewport)
	require.NoError(t, err)
	assert.True(t, menu.Open)
	assert.Equal(t, "2024-03-15", menu.Date)
	assert.Equal(t, 320, menu.Width)
	// Якорь помещается, позиция не зажимается
	assert.Equal(t, 100, menu.Left)
	assert.Equal(t, 268, menu.Top)

	// Меню показывает все события дня с интервалами HH:MM
	require.Len(t, menu.Items, 5)
	assert.Equal(t, "a", menu.Items[0].BookingID)
	assert.Equal(t, "09:00 — 10:00", menu.Items[0].TimeLabel)
}

func TestOpenOverflow_ClampsToViewport(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	// Якорная ячейка у правого края: left зажимается до width-320-20
	anchor := models.Rect{Left: 1300, Top: 200, Right: 1420, Bottom: 260}
	viewport := models.Size{Width: 1440, Height: 900}

	menu, err := c.OpenOverflow(day, anchor, viewport)
	require.NoError(t, err)
	assert.Equal(t, 1100, menu.Left)
}

func TestOpenOverflow_ReplacesOpenMenu(t *testing.T) {
	day, bookings := crowdedDay()
	otherDay := day.AddDate(0, 0, 1)
	bookings = append(bookings, booking("z", otherDay.Add(9*time.Hour)))

	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	anchor := models.Rect{Left: 100, Bottom: 260}
	viewport := models.Size{Width: 1440, Height: 900}

	_, err := c.OpenOverflow(day, anchor, viewport)
	require.NoError(t, err)

	menu, err := c.OpenOverflow(otherDay, anchor, viewport)
	require.NoError(t, err)

	// Для одной сетки открыто не более одного меню
	current := c.OverflowMenu()
	assert.Equal(t, menu.Date, current.Date)
	require.Len(t, current.Items, 1)
	assert.Equal(t, "z", current.Items[0].BookingID)
}

func TestOpenOverflow_EmptyDayPlaceholder(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	// День без событий: меню открывается пустым с заглушкой
	menu, err := c.OpenOverflow(day.AddDate(0, 0, 3), models.Rect{}, models.Size{Width: 1440})
	require.NoError(t, err)
	assert.True(t, menu.Open)
	assert.Empty(t, menu.Items)
	assert.Equal(t, "No events", menu.Placeholder)
}

func TestCloseOverflow(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	_, err := c.OpenOverflow(day, models.Rect{}, models.Size{Width: 1440})
	require.NoError(t, err)
	require.True(t, c.OverflowMenu().Open)

	c.CloseOverflow()
	assert.False(t, c.OverflowMenu().Open)
}

func TestSelectOverflowItem(t *testing.T) {
	day, bookings := crowdedDay()
	c := newTestController(staticFetcher(bookings...))
	require.NoError(t, c.Navigate(context.Background(), day))

	_, err := c.OpenOverflow(day, models.Rect{}, models.Size{Width: 1440})
	require.NoError(t, err)

	draft, err := c.SelectOverflowItem("d")
	require.NoError(t, err)
	assert.Equal(t, models.DraftEdit, draft.Mode)
	assert.Equal(t, "d", draft.BookingID)
	// Выбор пункта закрывает меню и открывает форму
	assert.False(t, c.OverflowMenu().Open)
}
