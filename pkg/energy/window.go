package energy

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// ReferenceTimezone anchors all window boundaries to the location the
// metered installations operate in, regardless of where the service
// process runs. America/Manaus is fixed UTC-4 with no DST.
const ReferenceTimezone = "America/Manaus"

const dateLayout = "2006-01-02"

var referenceLocation = mustLoadReferenceLocation()

func mustLoadReferenceLocation() *time.Location {
	loc, err := time.LoadLocation(ReferenceTimezone)
	if err != nil {
		panic(fmt.Sprintf("cannot load reference timezone %s: %v", ReferenceTimezone, err))
	}
	return loc
}

type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityRange Granularity = "range"
)

// Window is a half-open instant interval [Start, End). It is resolved
// fresh per request and never cached.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity
}

func parseLocalDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, date, referenceLocation)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// ResolveDay returns [local midnight, next local midnight) of date.
func ResolveDay(date string) (Window, error) {
	d, err := parseLocalDate(date)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: d, End: d.AddDate(0, 0, 1), Granularity: GranularityDay}, nil
}

// ResolveWeek returns the local calendar week containing date. Weeks
// start on Sunday.
func ResolveWeek(date string) (Window, error) {
	d, err := parseLocalDate(date)
	if err != nil {
		return Window{}, err
	}
	start := d.AddDate(0, 0, -int(d.Weekday()))
	return Window{Start: start, End: start.AddDate(0, 0, 7), Granularity: GranularityWeek}, nil
}

// ResolveMonth returns the local calendar month containing date.
func ResolveMonth(date string) (Window, error) {
	d, err := parseLocalDate(date)
	if err != nil {
		return Window{}, err
	}
	start := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, referenceLocation)
	return Window{Start: start, End: start.AddDate(0, 1, 0), Granularity: GranularityMonth}, nil
}

// ResolveRange returns [start-of-day(start), end-of-day(end)) for an
// explicit date pair.
func ResolveRange(startDate, endDate string) (Window, error) {
	start, err := parseLocalDate(startDate)
	if err != nil {
		return Window{}, err
	}
	end, err := parseLocalDate(endDate)
	if err != nil {
		return Window{}, err
	}
	return Window{Start: start, End: end.AddDate(0, 0, 1), Granularity: GranularityRange}, nil
}

// Resolve dispatches on granularity for callers that take it as input.
func Resolve(granularity Granularity, date string) (Window, error) {
	switch granularity {
	case GranularityDay:
		return ResolveDay(date)
	case GranularityWeek:
		return ResolveWeek(date)
	case GranularityMonth:
		return ResolveMonth(date)
	default:
		return Window{}, fmt.Errorf("%w: unknown granularity %q", ErrInvalidDate, granularity)
	}
}
