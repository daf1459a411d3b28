package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

func testLookups() Lookups {
	return Lookups{
		Vehicles: map[string]*domain.Vehicle{
			"v1": {ID: "v1", Plate: "ABC123", VIN: "VIN0001"},
			"v2": {ID: "v2", VIN: "VIN0002"},
		},
		Bays: map[string]*domain.Bay{
			"b1": {ID: "b1", Name: "BAY-2-3"},
		},
		Technicians: map[string]*domain.Technician{
			"t1": {ID: "t1", Name: "J. Doe"},
			"t2": {ID: "t2", Name: "M. Smith"},
		},
	}
}

func TestComposeTitle_AllSegments(t *testing.T) {
	b := &domain.Booking{
		VehicleID:     "v1",
		BayID:         "b1",
		TechnicianIDs: []string{"t1"},
	}
	assert.Equal(t, "J. Doe · ABC123 · BAY-2-3", ComposeTitle(b, testLookups()))
}

func TestComposeTitle_MultipleTechnicians(t *testing.T) {
	b := &domain.Booking{
		VehicleID:     "v1",
		BayID:         "b1",
		TechnicianIDs: []string{"t1", "t2"},
	}
	assert.Equal(t, "J. Doe, M. Smith · ABC123 · BAY-2-3", ComposeTitle(b, testLookups()))
}

func TestComposeTitle_VINFallback(t *testing.T) {
	// Без госномера используется VIN
	b := &domain.Booking{VehicleID: "v2", BayID: "b1"}
	assert.Equal(t, "VIN0002 · BAY-2-3", ComposeTitle(b, testLookups()))
}

func TestComposeTitle_MissingLookupsSkipped(t *testing.T) {
	// Неизвестные id дают пустые сегменты, которые отбрасываются
	b := &domain.Booking{
		VehicleID:     "ghost",
		BayID:         "ghost",
		TechnicianIDs: []string{"ghost"},
	}
	assert.Equal(t, "", ComposeTitle(b, testLookups()))
}

func TestMapEvents_EndDefaultsWithoutMutation(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{ID: "bk1", Start: start, VehicleID: "v1"}

	events := MapEvents([]*domain.Booking{b}, testLookups(), domain.EventFilter{})
	require.Len(t, events, 1)

	// Событие получает конец start+1h, запись остаётся без конца
	assert.Equal(t, start.Add(time.Hour), events[0].End)
	assert.Nil(t, b.End)
	assert.Same(t, b, events[0].Source)
}

func TestMapEvents_ExplicitEndKept(t *testing.T) {
	start := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(3 * time.Hour)
	b := &domain.Booking{ID: "bk1", Start: start, End: &end}

	events := MapEvents([]*domain.Booking{b}, testLookups(), domain.EventFilter{})
	require.Len(t, events, 1)
	assert.Equal(t, end, events[0].End)
}

func TestMapEvents_FilterPrecedesMapping(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: "bk1", BayID: "b1", Start: time.Now()},
		{ID: "bk2", BayID: "b2", Start: time.Now()},
		{ID: "bk3", BayID: "b1", TechnicianIDs: []string{"t1"}, Start: time.Now()},
	}

	events := MapEvents(bookings, testLookups(), domain.EventFilter{BayID: "b1"})
	require.Len(t, events, 2)
	assert.Equal(t, "bk1", events[0].ID)
	assert.Equal(t, "bk3", events[1].ID)

	events = MapEvents(bookings, testLookups(), domain.EventFilter{BayID: "b1", TechnicianID: "t1"})
	require.Len(t, events, 1)
	assert.Equal(t, "bk3", events[0].ID)
}

func TestMapEvents_OrderPreserved(t *testing.T) {
	// Маппер не сортирует, порядок задают входные записи
	later := &domain.Booking{ID: "later", Start: time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)}
	earlier := &domain.Booking{ID: "earlier", Start: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}

	events := MapEvents([]*domain.Booking{later, earlier}, testLookups(), domain.EventFilter{})
	require.Len(t, events, 2)
	assert.Equal(t, "later", events[0].ID)
	assert.Equal(t, "earlier", events[1].ID)
}
