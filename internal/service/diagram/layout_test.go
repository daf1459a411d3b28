package diagram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram/models"
)

func TestLayout_DefaultPlanSlotCounts(t *testing.T) {
	lanes := Layout(nil, nil, domain.DefaultLanePlan())
	require.Len(t, lanes, 5)

	wantCounts := []int{5, 7, 8, 5, 4}
	for i, lane := range lanes {
		assert.Len(t, lane.Slots, wantCounts[i], "lane %d", lane.Lane)
	}
}

func TestLayout_PositionKeys(t *testing.T) {
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 2, ExpectedCount: 3, RowPattern: []int{1, 2}},
	}}

	lanes := Layout(nil, nil, plan)
	require.Len(t, lanes, 1)
	require.Len(t, lanes[0].Slots, 3)
	assert.Equal(t, "BAY-2-1", lanes[0].Slots[0].PositionKey)
	assert.Equal(t, "BAY-2-2", lanes[0].Slots[1].PositionKey)
	assert.Equal(t, "BAY-2-3", lanes[0].Slots[2].PositionKey)
}

func TestLayout_RowExtension(t *testing.T) {
	// Вместимость паттерна [1,2] = 3, шесть позиций требуют достройки
	// рядов шириной последнего: [1,2] -> [1,2,2,2]
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 1, ExpectedCount: 6, RowPattern: []int{1, 2}},
	}}

	lanes := Layout(nil, nil, plan)
	require.Len(t, lanes, 1)
	assert.Len(t, lanes[0].Slots, 6)

	columns := make([]int, 0)
	for _, row := range lanes[0].Rows {
		columns = append(columns, row.Columns)
	}
	assert.Equal(t, []int{1, 2, 2, 2}, columns)
}

func TestLayout_PlaceholderStaysEmpty(t *testing.T) {
	// Позиция без записи в справочнике не может показывать занятость,
	// даже если в снимке лежит бокс с подходящим id
	bays := []*domain.Bay{{ID: "bay-id-1", Name: "BAY-1-1"}}
	occupancy := map[string]domain.OccupancyEntry{
		"bay-id-1": {BookingID: "bk1", Start: time.Now()},
		"ghost-id": {BookingID: "bk2", Start: time.Now()},
	}
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 1, ExpectedCount: 2, RowPattern: []int{2}},
	}}

	lanes := Layout(bays, occupancy, plan)
	require.Len(t, lanes, 1)
	require.Len(t, lanes[0].Slots, 2)

	real, placeholder := lanes[0].Slots[0], lanes[0].Slots[1]
	assert.False(t, real.Placeholder)
	assert.True(t, real.Occupied)
	assert.Equal(t, "bk1", real.BookingID)

	assert.True(t, placeholder.Placeholder)
	assert.False(t, placeholder.Occupied)
	assert.Equal(t, "Empty", placeholder.Summary)
}

func TestLayout_CaseInsensitiveBayMatch(t *testing.T) {
	bays := []*domain.Bay{{ID: "bay-id-1", Name: "bay-1-1"}}
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 1, ExpectedCount: 1, RowPattern: []int{1}},
	}}

	lanes := Layout(bays, nil, plan)
	require.Len(t, lanes[0].Slots, 1)
	assert.False(t, lanes[0].Slots[0].Placeholder)
	assert.Equal(t, "bay-1-1", lanes[0].Slots[0].BayName)
}

func TestLayout_ColumnPercents(t *testing.T) {
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 1, ExpectedCount: 3, RowPattern: []int{1, 2}},
	}}

	lanes := Layout(nil, nil, plan)
	slots := lanes[0].Slots
	require.Len(t, slots, 3)
	assert.Equal(t, 50, slots[0].LeftPercent)
	assert.Equal(t, 25, slots[1].LeftPercent)
	assert.Equal(t, 75, slots[2].LeftPercent)
}

func TestLayout_Geometry(t *testing.T) {
	plan := domain.LanePlan{Lanes: []domain.LaneSpec{
		{Lane: 1, ExpectedCount: 2, RowPattern: []int{1, 1}, OffsetSlots: 1},
	}}

	lanes := Layout(nil, nil, plan)
	lane := lanes[0]
	assert.Equal(t, models.BayWidth, lane.WidthPx)
	assert.Equal(t, models.SlotHeight, lane.OffsetPx)
	assert.Equal(t, models.TopPadding*2+2*models.SlotHeight, lane.HeightPx)

	// Ряды идут вниз от вертикального сдвига полосы
	require.Len(t, lane.Rows, 2)
	assert.Equal(t, models.SlotHeight+models.TopPadding, lane.Rows[0].TopPx)
	assert.Equal(t, models.SlotHeight+models.TopPadding+models.SlotHeight, lane.Rows[1].TopPx)
}

func TestLayout_Deterministic(t *testing.T) {
	bays := []*domain.Bay{
		{ID: "b1", Name: "BAY-1-1"},
		{ID: "b2", Name: "BAY-2-1"},
	}
	occupancy := map[string]domain.OccupancyEntry{
		"b1": {BookingID: "bk1", Start: time.Now()},
	}
	plan := domain.DefaultLanePlan()

	first := Layout(bays, occupancy, plan)
	second := Layout(bays, occupancy, plan)
	assert.Equal(t, first, second)
}
