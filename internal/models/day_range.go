package models

import (
	"errors"
	"time"
)

// PurchaseDateLayout is the ISO calendar date format accepted by the API.
const PurchaseDateLayout = "2006-01-02"

var ErrInvalidPurchaseDate = errors.New("invalid purchase date, expected YYYY-MM-DD")

// DayRange is the closed interval [Start, End] covering one calendar day.
type DayRange struct {
	Start time.Time
	End   time.Time
}

// NewDayRange returns the range from the first to the last instant of date's calendar day in loc.
// End is the last microsecond of the day, the finest resolution the store keeps.
func NewDayRange(date time.Time, loc *time.Location) DayRange {
	if loc == nil {
		loc = time.UTC
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Microsecond), loc)

	return DayRange{Start: start, End: end}
}

// Contains reports whether t falls inside the range, bounds included.
func (r DayRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filters converts the range into repository filters.
func (r DayRange) Filters() PurchaseRecordFilters {
	start, end := r.Start, r.End
	return PurchaseRecordFilters{
		StartTime: &start,
		EndTime:   &end,
	}
}

// ParsePurchaseDate parses a YYYY-MM-DD calendar date.
func ParsePurchaseDate(value string) (time.Time, error) {
	date, err := time.Parse(PurchaseDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidPurchaseDate
	}
	return date, nil
}
