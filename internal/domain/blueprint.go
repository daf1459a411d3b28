package domain

// LaneSpec конфигурация одной полосы (lane) на план-схеме цеха
type LaneSpec struct {
	Lane int
	// ExpectedCount сколько позиций боксов должно быть отрисовано в полосе,
	// независимо от того, сколько записей реально заведено в справочнике
	ExpectedCount int
	// RowPattern число колонок в каждом ряду сверху вниз (1 или 2).
	// Пример: X / XX / XX -> [1, 2, 2]
	RowPattern []int
	// OffsetSlots вертикальный сдвиг полосы в слотах. Чисто визуальная
	// ступенчатость чертежа, на привязку слотов к боксам не влияет.
	OffsetSlots int
}

// PatternCapacity returns the total slot capacity of the base row pattern
func (s LaneSpec) PatternCapacity() int {
	total := 0
	for _, cols := range s.RowPattern {
		total += cols
	}
	return total
}

// LanePlan полная конфигурация план-схемы: упорядоченный список полос
type LanePlan struct {
	Lanes []LaneSpec
}

// DefaultLanePlan возвращает штатную планировку цеха.
// Используется как fallback, когда справочник боксов неполон:
// Bay1=5, Bay2=7, Bay3=8, Bay4=5, Bay5=4.
func DefaultLanePlan() LanePlan {
	return LanePlan{
		Lanes: []LaneSpec{
			{Lane: 1, ExpectedCount: 5, RowPattern: []int{1, 2, 2}, OffsetSlots: 1},
			{Lane: 2, ExpectedCount: 7, RowPattern: []int{1, 2, 2, 2}, OffsetSlots: 0},
			{Lane: 3, ExpectedCount: 8, RowPattern: []int{2, 2, 2, 2}, OffsetSlots: 0},
			{Lane: 4, ExpectedCount: 5, RowPattern: []int{1, 1, 1, 2}, OffsetSlots: 0},
			{Lane: 5, ExpectedCount: 4, RowPattern: []int{1, 1, 2}, OffsetSlots: 1},
		},
	}
}
