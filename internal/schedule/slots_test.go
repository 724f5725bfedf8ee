package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsCatalog(t *testing.T) {
	slots := Slots()

	require.Len(t, slots, 18)
	assert.Equal(t, TimeSlot("09:00 AM"), slots[0])
	assert.Equal(t, TimeSlot("12:00 PM"), slots[6])
	assert.Equal(t, TimeSlot("05:30 PM"), slots[17])

	// The returned slice is a copy; mutating it must not touch the catalog.
	slots[0] = "mutated"
	assert.Equal(t, TimeSlot("09:00 AM"), Slots()[0])
}

func TestSlotPosition(t *testing.T) {
	for i, s := range Slots() {
		pos, ok := SlotPosition(string(s))
		require.True(t, ok, "slot %q should be in the catalog", s)
		assert.Equal(t, i, pos)
	}

	_, ok := SlotPosition("08:00 AM")
	assert.False(t, ok)
	_, ok = SlotPosition("9:00 AM")
	assert.False(t, ok, "labels match exactly, no normalization")
}

func TestIsCatalogSlot(t *testing.T) {
	assert.True(t, IsCatalogSlot("02:30 PM"))
	assert.False(t, IsCatalogSlot("02:30PM"))
	assert.False(t, IsCatalogSlot(""))
	assert.False(t, IsCatalogSlot("06:00 PM"))
}
