package commands

import (
	"fmt"
	"time"
)

const startTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// formatStartTime renders an epoch-millisecond start time as an ISO-8601
// offset timestamp in the local zone.
func formatStartTime(startMillis int64) string {
	return time.UnixMilli(startMillis).Format(startTimeLayout)
}

// formatInterval renders a millisecond duration as fixed-width
// HH:MM:SS.mmm, truncating rather than rounding.
func formatInterval(millis int64) string {
	hours := millis / time.Hour.Milliseconds()
	millis -= hours * time.Hour.Milliseconds()
	minutes := millis / time.Minute.Milliseconds()
	millis -= minutes * time.Minute.Milliseconds()
	seconds := millis / time.Second.Milliseconds()
	millis -= seconds * time.Second.Milliseconds()
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
