package push

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(format string, v ...interface{}) {}
func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeInvalidator struct {
	prefixes []string
}

func (f *fakeInvalidator) Invalidate(prefix string) int {
	f.prefixes = append(f.prefixes, prefix)
	return 1
}

type fakeRefresher struct {
	calls chan struct{}
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls <- struct{}{}
	return nil
}

func newTestListener() (*Listener, *fakeInvalidator, *fakeRefresher) {
	invalidator := &fakeInvalidator{}
	refresher := &fakeRefresher{calls: make(chan struct{}, 10)}
	l := NewListener("ws://unused", time.Second, invalidator, refresher, nopLogger{}, nil)
	return l, invalidator, refresher
}

func TestHandle_BookingEventInvalidatesCaches(t *testing.T) {
	l, invalidator, refresher := newTestListener()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.refreshLoop(ctx)

	l.handle([]byte(`{"type":"booking.updated","data":{"id":"bk1"}}`))

	assert.Equal(t, []string{"agenda", "bookings", "occupancy"}, invalidator.prefixes)
	select {
	case <-refresher.calls:
	case <-time.After(time.Second):
		t.Fatal("expected grid refresh after invalidation")
	}
}

func TestHandle_PrefixFiltering(t *testing.T) {
	l, invalidator, _ := newTestListener()

	// Не-booking событие полностью игнорируется
	l.handle([]byte(`{"type":"invoice.created","data":{}}`))
	assert.Empty(t, invalidator.prefixes)

	// Payload не разбирается: достаточно префикса типа
	l.handle([]byte(`{"type":"booking.deleted"}`))
	assert.Len(t, invalidator.prefixes, 3)
}

func TestHandle_MalformedIgnored(t *testing.T) {
	l, invalidator, _ := newTestListener()

	l.handle([]byte(`{broken json`))
	l.handle([]byte(`{"data":{"id":"bk1"}}`)) // без типа
	l.handle([]byte(``))

	assert.Empty(t, invalidator.prefixes)
}

func TestHandle_StormCoalescesRefresh(t *testing.T) {
	l, _, refresher := newTestListener()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.refreshLoop(ctx)

	// Шторм сообщений: сигнал в канал неблокирующий, лишние схлопываются
	for i := 0; i < 20; i++ {
		l.handle([]byte(`{"type":"booking.updated"}`))
	}

	select {
	case <-refresher.calls:
	case <-time.After(time.Second):
		t.Fatal("expected at least one refresh")
	}

	// Повторного немедленного refresh нет: limiter держит паузу
	select {
	case <-refresher.calls:
		t.Fatal("storm must coalesce into a single refresh")
	case <-time.After(100 * time.Millisecond):
	}
}
