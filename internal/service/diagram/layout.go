package diagram

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
	"github.com/m04kA/SMC-SchedulingConsole/internal/service/diagram/models"
)

// extendPattern наращивает базовый паттерн рядов до вместимости
// ExpectedCount, повторяя ширину последнего ряда. Гарантирует место
// каждой позиции: переполнение полосы не ошибка, а достраивание рядов.
func extendPattern(spec domain.LaneSpec) []int {
	rows := make([]int, len(spec.RowPattern))
	copy(rows, spec.RowPattern)
	capacity := spec.PatternCapacity()
	if len(rows) == 0 {
		rows = []int{1}
		capacity = 1
	}

	for capacity < spec.ExpectedCount {
		last := rows[len(rows)-1]
		rows = append(rows, last)
		capacity += last
	}
	return rows
}

// columnPercents горизонтальные позиции слотов ряда: одиночный слот по
// центру, парный на фиксированных отступах слева/справа
func columnPercents(columns int) []int {
	if columns == 1 {
		return []int{50}
	}
	return []int{25, 75}
}

// Layout раскладывает боксы по полосам план-схемы. Чистая функция своих
// входов: повторный вызов с теми же bays/occupancy/plan даёт идентичный
// результат.
//
// Позиции полосы генерируются как BAY-<lane>-<1..count> и сопоставляются
// с загруженными боксами по имени без учёта регистра. Позиция без записи
// в справочнике становится placeholder-ом и всегда отображается пустой,
// что бы ни лежало в occupancy.
func Layout(bays []*domain.Bay, occupancy map[string]domain.OccupancyEntry, plan domain.LanePlan) []models.RenderedLane {
	bayByName := make(map[string]*domain.Bay, len(bays))
	for _, b := range bays {
		bayByName[strings.ToUpper(b.Name)] = b
	}

	lanes := make([]models.RenderedLane, 0, len(plan.Lanes))
	for _, spec := range plan.Lanes {
		rows := extendPattern(spec)
		offsetPx := spec.OffsetSlots * models.SlotHeight
		height := models.TopPadding*2 + len(rows)*models.SlotHeight

		lane := models.RenderedLane{
			Lane:     spec.Lane,
			WidthPx:  models.BayWidth,
			HeightPx: height,
			OffsetPx: offsetPx,
			Rows:     make([]models.RenderedRow, 0, len(rows)),
			Slots:    make([]models.RenderedSlot, 0, spec.ExpectedCount),
		}

		position := 1
		for rowIdx, columns := range rows {
			rowTop := offsetPx + models.TopPadding + rowIdx*models.SlotHeight
			lane.Rows = append(lane.Rows, models.RenderedRow{Columns: columns, TopPx: rowTop})

			slotTop := rowTop + (models.SlotHeight-models.TruckHeight)/2
			for colIdx, pct := range columnPercents(columns) {
				if position > spec.ExpectedCount {
					break
				}
				key := fmt.Sprintf("BAY-%d-%d", spec.Lane, position)
				position++

				slot := models.RenderedSlot{
					Lane:        spec.Lane,
					Row:         rowIdx,
					Column:      colIdx,
					PositionKey: key,
					BayName:     key,
					Placeholder: true,
					Summary:     "Empty",
					TopPx:       slotTop,
					LeftPercent: pct,
				}

				if bay, ok := bayByName[strings.ToUpper(key)]; ok {
					slot.BayID = bay.ID
					slot.BayName = bay.Name
					slot.Placeholder = false
					if occ, busy := occupancy[bay.ID]; busy {
						slot.Occupied = true
						slot.BookingID = occ.BookingID
						slot.Summary = occ.Summary()
					}
				}

				lane.Slots = append(lane.Slots, slot)
			}
		}

		lanes = append(lanes, lane)
	}
	return lanes
}
