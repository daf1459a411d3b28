package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/calendar"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/grid/models"
	"github.com/m04kA/SMC-SchedulingConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeFetcher struct {
	fn func(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error)
}

func (f *fakeFetcher) Agenda(ctx context.Context, r domain.TimeRange, filter domain.EventFilter) ([]*domain.Booking, error) {
	return f.fn(ctx, r, filter)
}

type fakeLookups struct {
	labels map[string]string
}

func (f *fakeLookups) CalendarLookups() calendar.Lookups {
	return calendar.Lookups{}
}

func (f *fakeLookups) ResolveLabel(kind domain.LookupKind, id string) string {
	if label, ok := f.labels[string(kind)+":"+id]; ok {
		return label
	}
	return id
}

func booking(id string, start time.Time) *domain.Booking {
	return &domain.Booking{ID: id, Start: start, Status: domain.StatusOpen}
}

func staticFetcher(bookings ...*domain.Booking) *fakeFetcher {
	return &fakeFetcher{fn: func(context.Context, domain.TimeRange, domain.EventFilter) ([]*domain.Booking, error) {
		return bookings, nil
	}}
}

func newTestController(fetcher AgendaFetcher) *Controller {
	return NewController(fetcher, &fakeLookups{}, nopLogger{}, nil, time.UTC)
}

func TestController_InitialState(t *testing.T) {
	c := newTestController(staticFetcher())
	snap := c.Snapshot()
	assert.Equal(t, models.StateIdle, snap.State)
	assert.Equal(t, domain.ViewMonth, snap.View)
	assert.Empty(t, snap.Events)
}

func TestController_RefreshLoadsAndSorts(t *testing.T) {
	now := time.Now().UTC()
	later := booking("later", now.Add(4*time.Hour))
	earlier := booking("earlier", now.Add(time.Hour))

	c := newTestController(staticFetcher(later, earlier))
	require.NoError(t, c.Refresh(context.Background()))

	snap := c.Snapshot()
	assert.Equal(t, models.StateReady, snap.State)
	require.Len(t, snap.Events, 2)
	assert.Equal(t, "earlier", snap.Events[0].ID)
	assert.Equal(t, "later", snap.Events[1].ID)
	assert.Equal(t, domain.WorkdayStartHour, snap.Workday.StartHour)
	assert.Equal(t, domain.WorkdayEndHour, snap.Workday.EndHour)
}

func TestController_RefreshDropsInactiveStatuses(t *testing.T) {
	now := time.Now().UTC()
	closed := booking("closed", now)
	closed.Status = domain.StatusClosed
	canceled := booking("canceled", now)
	canceled.Status = domain.StatusCanceled
	open := booking("open", now)

	c := newTestController(staticFetcher(closed, canceled, open))
	require.NoError(t, c.Refresh(context.Background()))

	snap := c.Snapshot()
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "open", snap.Events[0].ID)
}

func TestController_StaleFetchDiscarded(t *testing.T) {
	now := time.Now().UTC()
	staleBooking := booking("stale", now)
	freshBooking := booking("fresh", now)

	firstStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	call := 0
	fetcher := &fakeFetcher{fn: func(context.Context, domain.TimeRange, domain.EventFilter) ([]*domain.Booking, error) {
		call++
		if call == 1 {
			close(firstStarted)
			<-releaseFirst
			return []*domain.Booking{staleBooking}, nil
		}
		return []*domain.Booking{freshBooking}, nil
	}}

	c := newTestController(fetcher)

	firstDone := make(chan error, 1)
	go func() { firstDone <- c.Refresh(context.Background()) }()
	<-firstStarted

	// Вторая загрузка вытесняет первую и применяется
	require.NoError(t, c.Refresh(context.Background()))

	// Поздний ответ первой загрузки отбрасывается без ошибки
	close(releaseFirst)
	require.NoError(t, <-firstDone)

	snap := c.Snapshot()
	assert.Equal(t, models.StateReady, snap.State)
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "fresh", snap.Events[0].ID)
}

func TestController_RefreshErrorKeepsEvents(t *testing.T) {
	now := time.Now().UTC()
	fail := false
	fetcher := &fakeFetcher{fn: func(context.Context, domain.TimeRange, domain.EventFilter) ([]*domain.Booking, error) {
		if fail {
			return nil, errors.New("backend down")
		}
		return []*domain.Booking{booking("bk1", now)}, nil
	}}

	c := newTestController(fetcher)
	require.NoError(t, c.Refresh(context.Background()))

	fail = true
	err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrRangeFetch)

	snap := c.Snapshot()
	assert.Equal(t, models.StateError, snap.State)
	assert.NotEmpty(t, snap.Error)
	// События предыдущей удачной загрузки остаются видимыми
	require.Len(t, snap.Events, 1)
	assert.Equal(t, "bk1", snap.Events[0].ID)
}

func TestController_DayViewAlignsReferenceToFirstEvent(t *testing.T) {
	eventDay := time.Date(2024, 3, 20, 10, 0, 0, 0, time.UTC)
	c := newTestController(staticFetcher(booking("bk1", eventDay)))

	require.NoError(t, c.SetView(context.Background(), domain.ViewDay))
	require.NoError(t, c.Navigate(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)))

	snap := c.Snapshot()
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), snap.Reference)
}

func TestController_SelectSlot(t *testing.T) {
	c := newTestController(staticFetcher())
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	draft, err := c.SelectSlot(start, end)
	require.NoError(t, err)
	assert.Equal(t, models.DraftCreate, draft.Mode)
	assert.Equal(t, start, draft.Start)
	require.NotNil(t, draft.End)
	assert.Equal(t, end, *draft.End)
	assert.Equal(t, string(domain.StatusOpen), draft.Status)

	stored, ok := c.Draft()
	require.True(t, ok)
	assert.Equal(t, draft, stored)
}

func TestController_SelectSlot_InvalidSpan(t *testing.T) {
	c := newTestController(staticFetcher())
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	_, err := c.SelectSlot(start, start)
	assert.ErrorIs(t, err, ErrInvalidSpan)

	_, ok := c.Draft()
	assert.False(t, ok)
}

func TestController_SelectEvent(t *testing.T) {
	now := time.Now().UTC()
	b := booking("bk1", now)
	b.VehicleID = "v1"
	b.BayID = "bay1"
	b.Complaint = ptr.Ptr("brake noise")

	lookups := &fakeLookups{labels: map[string]string{
		"vehicle:v1": "ABC123",
		"bay:bay1":   "BAY-2-3",
	}}
	c := NewController(staticFetcher(b), lookups, nopLogger{}, nil, time.UTC)
	require.NoError(t, c.Refresh(context.Background()))

	draft, err := c.SelectEvent("bk1")
	require.NoError(t, err)
	assert.Equal(t, models.DraftEdit, draft.Mode)
	assert.Equal(t, "bk1", draft.BookingID)
	assert.Equal(t, "brake noise", draft.Complaint)
	assert.Equal(t, "ABC123", draft.VehicleLabel)
	assert.Equal(t, "BAY-2-3", draft.BayLabel)

	c.ClearDraft()
	_, ok := c.Draft()
	assert.False(t, ok)
}

func TestController_SelectEvent_NotFound(t *testing.T) {
	c := newTestController(staticFetcher())
	require.NoError(t, c.Refresh(context.Background()))

	_, err := c.SelectEvent("ghost")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestController_FindBooking(t *testing.T) {
	now := time.Now().UTC()
	b := booking("bk1", now)
	c := newTestController(staticFetcher(b))
	require.NoError(t, c.Refresh(context.Background()))

	found, ok := c.FindBooking("bk1")
	require.True(t, ok)
	assert.Same(t, b, found)

	_, ok = c.FindBooking("ghost")
	assert.False(t, ok)
}
