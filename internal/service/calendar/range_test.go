package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingConsole/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeRange_Day(t *testing.T) {
	// Полдень пятницы -> сутки пятницы
	ref := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	rng, err := ComputeRange(ref, domain.ViewDay, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 15), rng.From)
	assert.Equal(t, date(2024, 3, 16), rng.To)
}

func TestComputeRange_Week_SundayStart(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			// 2024-03-15 пятница -> неделя 03-10 (вс) .. 03-17
			name:     "friday mid-week",
			ref:      time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC),
			wantFrom: date(2024, 3, 10),
			wantTo:   date(2024, 3, 17),
		},
		{
			// Воскресенье и есть начало недели
			name:     "sunday itself",
			ref:      date(2024, 3, 10),
			wantFrom: date(2024, 3, 10),
			wantTo:   date(2024, 3, 17),
		},
		{
			// Суббота закрывает неделю
			name:     "saturday end of week",
			ref:      date(2024, 3, 16),
			wantFrom: date(2024, 3, 10),
			wantTo:   date(2024, 3, 17),
		},
		{
			// Неделя через границу месяца
			name:     "week across month boundary",
			ref:      date(2024, 4, 2),
			wantFrom: date(2024, 3, 31),
			wantTo:   date(2024, 4, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ComputeRange(tt.ref, domain.ViewWeek, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, rng.From)
			assert.Equal(t, tt.wantTo, rng.To)
		})
	}
}

func TestComputeRange_Month(t *testing.T) {
	tests := []struct {
		name     string
		ref      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			// Високосный февраль целиком
			name:     "leap february",
			ref:      date(2024, 2, 15),
			wantFrom: date(2024, 2, 1),
			wantTo:   date(2024, 3, 1),
		},
		{
			// Декабрь переходит в январь следующего года
			name:     "december rollover",
			ref:      date(2024, 12, 31),
			wantFrom: date(2024, 12, 1),
			wantTo:   date(2025, 1, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng, err := ComputeRange(tt.ref, domain.ViewMonth, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, rng.From)
			assert.Equal(t, tt.wantTo, rng.To)
		})
	}
}

func TestComputeRange_Agenda(t *testing.T) {
	// Окно агенды асимметричное: неделя назад, месяц вперёд
	ref := time.Date(2024, 3, 15, 9, 45, 0, 0, time.UTC)

	rng, err := ComputeRange(ref, domain.ViewAgenda, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 3, 8), rng.From)
	assert.Equal(t, date(2024, 4, 14), rng.To)
}

func TestComputeRange_MidnightAligned(t *testing.T) {
	ref := time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC)

	for _, view := range []domain.ViewMode{domain.ViewDay, domain.ViewWeek, domain.ViewMonth, domain.ViewAgenda} {
		rng, err := ComputeRange(ref, view, time.UTC)
		require.NoError(t, err)
		assert.Zero(t, rng.From.Hour(), "view %s: from must be midnight", view)
		assert.Zero(t, rng.To.Hour(), "view %s: to must be midnight", view)
	}
}

func TestComputeRange_UnknownView(t *testing.T) {
	_, err := ComputeRange(date(2024, 3, 15), domain.ViewMode("quarter"), time.UTC)
	assert.ErrorIs(t, err, ErrUnknownView)
}
