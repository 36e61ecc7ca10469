// Package catalog holds the fixed set of bookable appointment slots and the
// duration table for the salon's services. Both are process-wide constants:
// the same slots apply to every calendar day.
package catalog

// Slots lists every bookable start time of a day, in order, 24h HH:MM.
var Slots = []string{
	"10:00", "10:30", "11:00", "11:30",
	"12:00", "12:30", "13:00", "13:30",
	"14:00", "14:30", "15:00", "15:30",
	"16:00", "16:30", "17:00",
}

// DefaultDurationMins is used for services missing from the duration table.
const DefaultDurationMins = 60

var serviceDurations = map[string]int{
	"polish-change":    30,
	"classic-manicure": 45,
	"gel":              60,
	"spa-pedicure":     60,
	"nail-art":         75,
	"acrylic":          90,
}

var slotSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Slots))
	for _, s := range Slots {
		m[s] = struct{}{}
	}
	return m
}()

// IsSlot reports whether t is a member of the slot catalog.
func IsSlot(t string) bool {
	_, ok := slotSet[t]
	return ok
}

// DurationMins returns the configured duration for a service.
// Unknown services fall back to DefaultDurationMins rather than failing,
// so the booking form keeps working when the site adds a new service
// before the backend learns about it.
func DurationMins(service string) int {
	if d, ok := serviceDurations[service]; ok {
		return d
	}
	return DefaultDurationMins
}
