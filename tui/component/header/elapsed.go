package header

import (
	"fmt"
	"time"
)

const secondsInDay = 86400

// ElapsedText formats an elapsed duration as "[N day(s), ]HH:MM:SS ".
// Sub-second precision is discarded and negative durations count as zero.
func ElapsedText(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := uint64(d / time.Second)

	return fmt.Sprintf("%s%02d:%02d:%02d ",
		daysPrefix(secs/secondsInDay),
		(secs%secondsInDay)/3600,
		(secs%3600)/60,
		secs%60,
	)
}

func daysPrefix(days uint64) string {
	switch days {
	case 0:
		return ""
	case 1:
		return "1 day, "
	default:
		return fmt.Sprintf("%d days, ", days)
	}
}
