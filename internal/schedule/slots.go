package schedule

// TimeSlot is the label of one fixed half-hour booking interval within the
// practice day. Slots are global and never persisted per date; availability
// is always derived from the appointment store.
type TimeSlot string

// The business day runs 09:00–17:30 on a 30-minute cadence.
var timeSlots = []TimeSlot{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"11:30 AM",
	"12:00 PM",
	"12:30 PM",
	"01:00 PM",
	"01:30 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
	"03:30 PM",
	"04:00 PM",
	"04:30 PM",
	"05:00 PM",
	"05:30 PM",
}

var slotPosition = func() map[TimeSlot]int {
	m := make(map[TimeSlot]int, len(timeSlots))
	for i, s := range timeSlots {
		m[s] = i
	}
	return m
}()

// Slots returns the full catalog in day order. Callers own the returned slice.
func Slots() []TimeSlot {
	out := make([]TimeSlot, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// SlotPosition returns the ordering position of a slot label within the day,
// and whether the label belongs to the catalog at all.
func SlotPosition(label string) (int, bool) {
	pos, ok := slotPosition[TimeSlot(label)]
	return pos, ok
}

func IsCatalogSlot(label string) bool {
	_, ok := slotPosition[TimeSlot(label)]
	return ok
}
