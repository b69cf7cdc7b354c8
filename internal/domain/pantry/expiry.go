package pantry

import (
	"fmt"
	"time"

	"github.com/fridgetofork/pantry-admin/internal/domain/shared"
)

// ExpiringSoonDays is the inclusive upper bound, in days from today, of the
// EXPIRING_SOON bucket. Day 0 (expires today) is expiring soon, not expired.
const ExpiringSoonDays = 3

// ExpiryStatus is the bucket an item falls into relative to today
type ExpiryStatus string

const (
	ExpiryStatusNone         ExpiryStatus = "NONE"
	ExpiryStatusExpired      ExpiryStatus = "EXPIRED"
	ExpiryStatusExpiringSoon ExpiryStatus = "EXPIRING_SOON"
	ExpiryStatusSafe         ExpiryStatus = "SAFE"
)

var expiryStatusClasses = map[ExpiryStatus]string{
	ExpiryStatusNone:         "status-neutral",
	ExpiryStatusExpired:      "status-expired",
	ExpiryStatusExpiringSoon: "status-warning",
	ExpiryStatusSafe:         "status-safe",
}

// Class returns the presentation class of the bucket
func (s ExpiryStatus) Class() string {
	if c, ok := expiryStatusClasses[s]; ok {
		return c
	}
	return expiryStatusClasses[ExpiryStatusNone]
}

// Classification is the result of classifying one expiry date
type Classification struct {
	DaysUntilExpiry *int
	Status          ExpiryStatus
	Label           string
	StatusClass     string
}

// Classify buckets a nullable expiry date against today. Both values are
// reduced to calendar dates first, so the time of day never matters.
func Classify(expiry *time.Time, today time.Time) Classification {
	if expiry == nil {
		return Classification{
			Status:      ExpiryStatusNone,
			Label:       "No expiry date",
			StatusClass: ExpiryStatusNone.Class(),
		}
	}

	days := shared.DaysBetween(today, *expiry)
	status := bucketFor(days)

	return Classification{
		DaysUntilExpiry: &days,
		Status:          status,
		Label:           expiryLabel(days),
		StatusClass:     status.Class(),
	}
}

// DaysUntilExpiry returns the signed calendar-day distance, nil without a date
func DaysUntilExpiry(expiry *time.Time, today time.Time) *int {
	return Classify(expiry, today).DaysUntilExpiry
}

func bucketFor(days int) ExpiryStatus {
	switch {
	case days < 0:
		return ExpiryStatusExpired
	case days <= ExpiringSoonDays:
		return ExpiryStatusExpiringSoon
	default:
		return ExpiryStatusSafe
	}
}

func expiryLabel(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}
