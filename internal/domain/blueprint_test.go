package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneSpec_PatternCapacity(t *testing.T) {
	spec := LaneSpec{RowPattern: []int{1, 2, 2}}
	assert.Equal(t, 5, spec.PatternCapacity())

	assert.Zero(t, LaneSpec{}.PatternCapacity())
}

func TestDefaultLanePlan(t *testing.T) {
	plan := DefaultLanePlan()
	assert.Len(t, plan.Lanes, 5)

	// Базовый паттерн каждой полосы вмещает все её позиции без достраивания
	for _, spec := range plan.Lanes {
		assert.GreaterOrEqual(t, spec.PatternCapacity(), spec.ExpectedCount, "lane %d", spec.Lane)
	}
}
