package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey_Deterministic(t *testing.T) {
	a := NewKey(KindAgenda, "2024-03-01", "2024-04-01", "bay1")
	b := NewKey(KindAgenda, "2024-03-01", "2024-04-01", "bay1")
	assert.Equal(t, a, b)

	// Другой набор параметров даёт другой ключ
	c := NewKey(KindAgenda, "2024-03-01", "2024-04-01", "bay2")
	assert.NotEqual(t, a, c)

	// Разделитель не даёт склеиться соседним параметрам
	d := NewKey(KindAgenda, "ab", "c")
	e := NewKey(KindAgenda, "a", "bc")
	assert.NotEqual(t, d, e)
}

func TestStore_GetSet(t *testing.T) {
	s := New(0, nil, nil)
	key := NewKey(KindAgenda, "p1")

	_, ok := s.Get(key)
	assert.False(t, ok)

	s.Set(key, "value")
	v, ok := s.Get(key)
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestStore_InvalidateByPrefix(t *testing.T) {
	s := New(0, nil, nil)
	s.Set(NewKey(KindAgenda, "p1"), 1)
	s.Set(NewKey(KindAgenda, "p2"), 2)
	s.Set(NewKey(KindBookings), 3)
	s.Set(NewKey(KindOccupancy), 4)

	removed := s.Invalidate(KindAgenda)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get(NewKey(KindAgenda, "p1"))
	assert.False(t, ok)
	_, ok = s.Get(NewKey(KindBookings))
	assert.True(t, ok)
}

func TestStore_InvalidatePrefixMatchesRelatedKinds(t *testing.T) {
	// "booking" гасит и "bookings": инвалидация идёт по префиксу тега
	s := New(0, nil, nil)
	s.Set(Key{Kind: "bookings"}, 1)
	s.Set(Key{Kind: "bookings:recent"}, 2)
	s.Set(Key{Kind: "occupancy"}, 3)

	removed := s.Invalidate("bookings")
	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, s.Len())
}

func TestStore_TTLExpiry(t *testing.T) {
	s := New(10*time.Millisecond, nil, nil)
	key := NewKey(KindLookup, "bay")
	s.Set(key, "value")

	_, ok := s.Get(key)
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = s.Get(key)
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}

func TestStore_InvalidateAll(t *testing.T) {
	s := New(0, nil, nil)
	s.Set(NewKey(KindAgenda), 1)
	s.Set(NewKey(KindBookings), 2)

	s.InvalidateAll()
	assert.Zero(t, s.Len())
}
