package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotsAreOrderedAndHalfHourly(t *testing.T) {
	assert.True(t, sort.StringsAreSorted(Slots), "catalog must stay in display order")
	assert.Equal(t, "10:00", Slots[0])
	assert.Equal(t, "17:00", Slots[len(Slots)-1])
}

func TestIsSlot(t *testing.T) {
	for _, s := range Slots {
		assert.True(t, IsSlot(s), s)
	}
	assert.False(t, IsSlot("09:15"))
	assert.False(t, IsSlot("17:30"))
	assert.False(t, IsSlot(""))
}

func TestDurationMinsFallsBackForUnknownService(t *testing.T) {
	assert.Equal(t, 60, DurationMins("gel"))
	assert.Equal(t, 30, DurationMins("polish-change"))
	assert.Equal(t, DefaultDurationMins, DurationMins("hot-stone-massage"))
	assert.Equal(t, DefaultDurationMins, DurationMins(""))
}
