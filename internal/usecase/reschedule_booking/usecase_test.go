package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/infra/cache"
	"github.com/m04kA/SMC-SchedulingConsole/internal/integrations/fleetservice"
	"github.com/m04kA/SMC-SchedulingConsole/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeSource struct {
	bookings map[string]*domain.Booking
}

func (f *fakeSource) FindBooking(id string) (*domain.Booking, bool) {
	b, ok := f.bookings[id]
	return b, ok
}

type fakeClient struct {
	calls  int
	lastID string
	input  fleetservice.BookingInput
	result *domain.Booking
	err    error
}

func (f *fakeClient) UpdateBooking(ctx context.Context, id string, input fleetservice.BookingInput) (*domain.Booking, error) {
	f.calls++
	f.lastID = id
	f.input = input
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeInvalidator struct {
	prefixes []string
}

func (f *fakeInvalidator) Invalidate(prefix string) int {
	f.prefixes = append(f.prefixes, prefix)
	return 1
}

type fakeRefresher struct {
	calls int
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls++
	return nil
}

func sampleBooking() *domain.Booking {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	return &domain.Booking{
		ID:            "bk1",
		Complaint:     ptr.Ptr("brake noise"),
		Description:   "front axle",
		VehicleID:     "v1",
		BayID:         "bay1",
		TechnicianIDs: []string{"t1", "t2"},
		CompanyID:     "c1",
		Start:         start,
		End:           &end,
		Status:        domain.StatusInProgress,
		Notes:         "keep keys at desk",
	}
}

func TestExecute_WholeRecordWithNewSpan(t *testing.T) {
	current := sampleBooking()
	source := &fakeSource{bookings: map[string]*domain.Booking{"bk1": current}}
	client := &fakeClient{result: current}
	invalidator := &fakeInvalidator{}
	refresher := &fakeRefresher{}

	uc := NewUseCase(source, client, invalidator, refresher, nopLogger{})

	newStart := time.Date(2024, 3, 16, 14, 0, 0, 0, time.UTC)
	newEnd := newStart.Add(time.Hour)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "bk1",
		Start:     newStart,
		End:       &newEnd,
	})
	require.NoError(t, err)

	// Ровно один update и ровно одна перечитка диапазона
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1, refresher.calls)
	assert.Equal(t, "bk1", client.lastID)

	// Запись уходит целиком: меняется только интервал
	assert.Equal(t, newStart, client.input.Start)
	require.NotNil(t, client.input.End)
	assert.Equal(t, newEnd, *client.input.End)
	assert.Equal(t, "front axle", client.input.Description)
	assert.Equal(t, "v1", client.input.VehicleID)
	assert.Equal(t, "bay1", client.input.BayID)
	assert.Equal(t, []string{"t1", "t2"}, client.input.TechnicianIDs)
	assert.Equal(t, "keep keys at desk", client.input.Notes)
	require.NotNil(t, client.input.Complaint)
	assert.Equal(t, "brake noise", *client.input.Complaint)
	// Статус не отправляется, чтобы backend его не сбросил
	assert.Empty(t, client.input.Status)

	assert.Equal(t, []string{cache.KindAgenda, cache.KindBookings}, invalidator.prefixes)
}

func TestExecute_FailureLeavesStateUntouched(t *testing.T) {
	current := sampleBooking()
	source := &fakeSource{bookings: map[string]*domain.Booking{"bk1": current}}
	client := &fakeClient{err: fleetservice.ErrConflict}
	invalidator := &fakeInvalidator{}
	refresher := &fakeRefresher{}

	uc := NewUseCase(source, client, invalidator, refresher, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "bk1",
		Start:     time.Date(2024, 3, 16, 14, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrWriteFailed)

	// Отказ записи: без инвалидации и без перечитки, событие остаётся
	// на прежнем месте
	assert.Empty(t, invalidator.prefixes)
	assert.Zero(t, refresher.calls)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC), current.Start)
}

func TestExecute_NotFoundInRange(t *testing.T) {
	source := &fakeSource{bookings: map[string]*domain.Booking{}}
	client := &fakeClient{}
	uc := NewUseCase(source, client, &fakeInvalidator{}, &fakeRefresher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "ghost",
		Start:     time.Now(),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Zero(t, client.calls)
}

func TestExecute_NotFoundOnBackend(t *testing.T) {
	current := sampleBooking()
	source := &fakeSource{bookings: map[string]*domain.Booking{"bk1": current}}
	client := &fakeClient{err: fleetservice.ErrBookingNotFound}
	uc := NewUseCase(source, client, &fakeInvalidator{}, &fakeRefresher{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: "bk1", Start: time.Now()})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidSpan(t *testing.T) {
	current := sampleBooking()
	source := &fakeSource{bookings: map[string]*domain.Booking{"bk1": current}}
	client := &fakeClient{}
	uc := NewUseCase(source, client, &fakeInvalidator{}, &fakeRefresher{}, nopLogger{})

	start := time.Date(2024, 3, 16, 14, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID: "bk1",
		Start:     start,
		End:       &start,
	})
	assert.ErrorIs(t, err, ErrInvalidSpan)
	assert.Zero(t, client.calls)
}
