package utils

import "time"

// ShopLocation returns the shop's fixed-offset location. The business
// day is a calendar day at this offset; no daylight-saving shifts.
func ShopLocation(offsetHours int) *time.Location {
	return time.FixedZone("shop", offsetHours*3600)
}

// BusinessDayBounds maps an instant to the [start, end) UTC window of
// the business day it falls in. Every report variant goes through this
// one function.
func BusinessDayBounds(now time.Time, loc *time.Location) (start, end time.Time) {
	local := now.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.UTC(), midnight.Add(24 * time.Hour).UTC()
}

// LocalHour returns the hour-of-day of an instant in the shop's
// location, for X-report bucketing.
func LocalHour(t time.Time, loc *time.Location) int {
	return t.In(loc).Hour()
}
