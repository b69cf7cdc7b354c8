package pantry

import "time"

// Stats are the live stock counters over active items
type Stats struct {
	Total        int64 `json:"total"`
	Expired      int64 `json:"expired"`
	ExpiringSoon int64 `json:"expiring_soon"`
}

// Tally counts active items by bucket in memory
func Tally(items []PantryItem, today time.Time) Stats {
	var s Stats
	for i := range items {
		item := &items[i]
		if item.IsDeleted() {
			continue
		}
		s.Total++
		switch item.Classify(today).Status {
		case ExpiryStatusExpired:
			s.Expired++
		case ExpiryStatusExpiringSoon:
			s.ExpiringSoon++
		}
	}
	return s
}
