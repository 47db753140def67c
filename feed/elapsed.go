package feed

import (
	"fmt"
	"time"
)

const yearThreshold = 365 * 24 * 3600

// ElapsedLabel buckets a post age into the short form shown next to each
// timeline entry. All divisions truncate. The year boundary is a relative
// 365 day threshold , not a calendar year. Labels past the hour buckets
// are formatted from the post timestamp itself.
func ElapsedLabel(createdAt time.Time, now time.Time) string {
	secs := int64(now.Sub(createdAt).Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("%dm", secs/60)
	case secs < 24*3600:
		return fmt.Sprintf("%dh", secs/3600)
	case secs < yearThreshold:
		return createdAt.Format("Jan 2")
	}
	return createdAt.Format("Jan 2, 2006")
}
