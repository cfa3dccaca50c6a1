package spacedrep

import (
	"sort"
	"time"
)

// DueUnits returns the IDs of items due at now, most overdue first.
// Ties break by unit ID so the order is stable across runs.
func DueUnits(items map[string]*ReviewItem, now time.Time) []string {
	type due struct {
		id      string
		overdue float64
	}
	var dues []due

	for id, ri := range items {
		if ri.IsDue(now) {
			dues = append(dues, due{id: id, overdue: ri.OverdueDays(now)})
		}
	}

	sort.Slice(dues, func(i, j int) bool {
		if dues[i].overdue != dues[j].overdue {
			return dues[i].overdue > dues[j].overdue
		}
		return dues[i].id < dues[j].id
	})

	ids := make([]string, len(dues))
	for i, d := range dues {
		ids[i] = d.id
	}
	return ids
}
