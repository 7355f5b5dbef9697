package service

import "time"

const dateKeyLayout = "2006-01-02"

// LocalDateKey returns the day key for a timestamp using its own
// wall-clock date, never a UTC normalization. A meal logged at 00:15
// local time belongs to that calendar day regardless of timezone offset.
// Every day-boundary computation in the engine goes through this.
func LocalDateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// ParseDateKey validates a day key and returns the midnight it names in
// the given location.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateKeyLayout, key, loc)
}
