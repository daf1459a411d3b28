package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_DisplayLabel(t *testing.T) {
	assert.Equal(t, "open", StatusOpen.DisplayLabel())
	assert.Equal(t, "in_progress", StatusInProgress.DisplayLabel())
	assert.Equal(t, "canceled", StatusCanceled.DisplayLabel())
	// Операторы видят закрытую бронь как "ready"
	assert.Equal(t, "ready", StatusClosed.DisplayLabel())
}

func TestBooking_DisplayNumber(t *testing.T) {
	withNumber := Booking{ID: "a1b2c3d4e5", Number: "WO-1042"}
	assert.Equal(t, "WO-1042", withNumber.DisplayNumber())

	// Без номера показываются первые 6 символов id
	withoutNumber := Booking{ID: "a1b2c3d4e5"}
	assert.Equal(t, "a1b2c3", withoutNumber.DisplayNumber())

	shortID := Booking{ID: "abc"}
	assert.Equal(t, "abc", shortID.DisplayNumber())
}

func TestBooking_EffectiveEnd(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	open := Booking{Start: start}
	assert.Equal(t, start.Add(time.Hour), open.EffectiveEnd())
	assert.Nil(t, open.End)

	end := start.Add(30 * time.Minute)
	bounded := Booking{Start: start, End: &end}
	assert.Equal(t, end, bounded.EffectiveEnd())
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range ActiveStatuses {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status %s", status)
	}

	assert.False(t, (&Booking{Status: StatusClosed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCanceled}).IsActive())
}

func TestBooking_Occupies(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	b := Booking{Start: start}

	assert.True(t, b.Occupies(start))
	assert.True(t, b.Occupies(start.Add(30*time.Minute)))
	assert.False(t, b.Occupies(start.Add(time.Hour)))
	assert.False(t, b.Occupies(start.Add(-time.Minute)))
}

func TestOccupancyEntry_Summary(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	bounded := OccupancyEntry{
		BookingID: "a1b2c3d4e5",
		Number:    "WO-7",
		VehicleID: "TRUCK-12",
		CompanyID: "Acme",
		Start:     start,
		End:       &end,
	}
	assert.Equal(t,
		"#WO-7\nUnit: TRUCK-12\nCompany: Acme\n2024-03-15 10:00 — 2024-03-15 12:00",
		bounded.Summary())

	// Без конца интервал открыт "до сейчас", без номера берётся префикс id
	openEnded := OccupancyEntry{
		BookingID: "a1b2c3d4e5",
		VehicleID: "TRUCK-12",
		CompanyID: "Acme",
		Start:     start,
	}
	assert.Equal(t,
		"#a1b2c3\nUnit: TRUCK-12\nCompany: Acme\n2024-03-15 10:00 — now",
		openEnded.Summary())
}
