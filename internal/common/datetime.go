package common

import (
	"time"
	_ "time/tzdata"
)

// DateLayout
const (
	DateFormatYYYYMMDDWithTime = "2006-01-02 15:04:05"
	DateFormatDisplay          = "2 Jan 2006 — 15:04:05"
)

// TIMEZONE
const (
	TimezoneLondon = "Europe/London"
)

var londonLocation *time.Location

func init() {
	loc, err := time.LoadLocation(TimezoneLondon)
	if err != nil {
		// the tzdata import above embeds the zone database, so a missing
		// zone can only be a build problem, not a runtime condition.
		panic(err)
	}
	londonLocation = loc
}

// GetLocation returns the display timezone for all rendered dates. All
// user-facing timestamps are shown in UK local time, including DST.
func GetLocation() *time.Location {
	return londonLocation
}
