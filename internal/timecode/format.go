// Package timecode formats elapsed times for display.
package timecode

import (
	"fmt"
	"time"
)

// FormatDuration renders d as zero-padded "mm:ss".
//
// The minutes field wraps at 60 and hours are not shown, so 3600s renders as
// "00:00". Callers that may display an hour or more should use FormatClock.
func FormatDuration(d time.Duration) string {
	secs := wholeSeconds(d)
	return fmt.Sprintf("%02d:%02d", (secs/60)%60, secs%60)
}

// FormatClock renders d as "mm:ss" below one hour and "h:mm:ss" from there on
func FormatClock(d time.Duration) string {
	secs := wholeSeconds(d)
	if secs < 3600 {
		return FormatDuration(d)
	}
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func wholeSeconds(d time.Duration) int64 {
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}
