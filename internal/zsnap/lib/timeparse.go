// Package lib contains the core of zsnap: time parsing, the snapshot
// source backed by the zfs command-line tool, and the filter pipeline.
package lib

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeFormat is returned when a time string matches none of the
// accepted layouts.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// Accepted layouts, tried in order. Each carries the duration added in
// round-up mode: the largest span representable within the precision the
// layout omits.
var timeLayouts = []struct {
	layout  string
	roundUp time.Duration
}{
	{"2006-01-02", 23*time.Hour + 59*time.Minute + 59*time.Second},
	{"2006-01-02 15:04", 59 * time.Second},
	{"2006-01-02 15:04:05", 0},
}

// ParseTime parses a user-supplied time string in the local timezone.
// With roundUp set, a value that omits finer-grained fields is pushed to
// the end of its period, so a bare date used as a lower bound covers the
// entire day.
func ParseTime(value string, roundUp bool) (time.Time, error) {
	for _, l := range timeLayouts {
		t, err := time.ParseInLocation(l.layout, value, time.Local)
		if err != nil {
			continue
		}
		if roundUp {
			t = t.Add(l.roundUp)
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
}
