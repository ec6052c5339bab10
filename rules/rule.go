// Package rules resolves symbolic daylight saving time rules, in the style of
// the POSIX TZ "Mm.w.d/time" form, into concrete UTC instants.
package rules

import (
	"fmt"
	"math"
)

// Week selects which occurrence of a weekday in a month a rule refers to.
type Week uint8

const (
	First Week = iota + 1
	Second
	Third
	Fourth
	Last
)

var weekNames = [...]string{"", "first", "second", "third", "fourth", "last"}

func (w Week) String() string {
	if int(w) < len(weekNames) && w != 0 {
		return weekNames[w]
	}
	return fmt.Sprintf("Week(%d)", uint8(w))
}

// Basis is the offset a rule's local time of day is expressed in.
type Basis uint8

const (
	// Standard means local standard time.
	Standard Basis = iota
	// Daylight means local standard time plus the DST delta.
	Daylight
)

// TransitionRule describes "the Nth weekday of a month at a local time".
//
// Minutes is the local time of day in minutes after midnight. It may be
// negative or exceed a day, as POSIX allows (M3.4.4/26 is 02:00 on the
// Friday following the fourth Thursday of March).
type TransitionRule struct {
	Month   uint8 // 1-12
	Week    Week
	Weekday uint8 // 0 = Sunday
	Minutes int16
	Basis   Basis
}

// Valid reports whether the rule fields are in range.
func (r TransitionRule) Valid() bool {
	return r.Month >= 1 && r.Month <= 12 &&
		r.Week >= First && r.Week <= Last &&
		r.Weekday <= 6
}

// Day returns the day, counted from 1970-01-01, on which the rule's weekday
// condition holds in the given year. The local time of day is not applied.
func (r TransitionRule) Day(year int) int64 {
	month := int(r.Month)
	wd := int64(r.Weekday)
	first := DaysFromCivil(year, month, 1)
	if r.Week == Last {
		last := first + int64(DaysInMonth(year, month)) - 1
		return last - floorMod(int64(Weekday(last))-wd, 7)
	}
	return first + floorMod(wd-int64(Weekday(first)), 7) + int64(r.Week-1)*7
}

// ResolveInstant returns the unix instant at which the rule's wall clock
// condition occurs in year, reading the local time with basisMinutes as the
// UTC offset.
func ResolveInstant(r TransitionRule, year int, basisMinutes int) int64 {
	local := r.Day(year)*SecondsPerDay + int64(r.Minutes)*SecondsPerMinute
	return local - int64(basisMinutes)*SecondsPerMinute
}

// DSTRule is a recurring pair of transitions into and out of daylight time.
type DSTRule struct {
	// DeltaMinutes is added to the standard offset while DST is active. It is
	// negative for zones such as Europe/Dublin whose "standard" time is the
	// summer time.
	DeltaMinutes int16
	Start        TransitionRule
	End          TransitionRule
}

// Spans reports whether DST wraps the year boundary, as in the southern
// hemisphere where it starts late in the year and ends early in the next.
func (d DSTRule) Spans() bool {
	return d.Start.Month > d.End.Month
}

// basis returns the offset used to read rule r's local time.
func (d DSTRule) basis(r TransitionRule, stdMinutes int) int {
	if r.Basis == Daylight {
		return stdMinutes + int(d.DeltaMinutes)
	}
	return stdMinutes
}

// Bounds returns the DST start and end instants nominally belonging to year.
func (d DSTRule) Bounds(year int, stdMinutes int) (start, end int64) {
	start = ResolveInstant(d.Start, year, d.basis(d.Start, stdMinutes))
	end = ResolveInstant(d.End, year, d.basis(d.End, stdMinutes))
	return start, end
}

// Active reports whether DST is in effect at ts for a zone with the given
// standard offset.
//
// A rule tied to year Y can land just outside Y once converted to UTC, so the
// bounds of the neighbouring years are considered too. The latest transition
// at or before ts decides. Within a single year this is the usual interval
// test: start <= ts < end when DST sits inside the year, and the inverted
// ts >= start || ts < end when it spans the year boundary.
func (d DSTRule) Active(ts int64, stdMinutes int) bool {
	year := YearOf(ts)
	latest := int64(math.MinInt64)
	active := false
	for y := year - 1; y <= year+1; y++ {
		start, end := d.Bounds(y, stdMinutes)
		if start <= ts && start > latest {
			latest, active = start, true
		}
		if end <= ts && end > latest {
			latest, active = end, false
		}
	}
	return active
}

// Offset returns the offset in minutes in effect at ts.
func (d DSTRule) Offset(ts int64, stdMinutes int) int {
	if d.Active(ts, stdMinutes) {
		return stdMinutes + int(d.DeltaMinutes)
	}
	return stdMinutes
}

// Transition is a change of offset produced by a DSTRule.
type Transition struct {
	At            int64
	OffsetMinutes int
	DST           bool
}

// Transitions returns the rule's transitions with lo <= At < hi, ascending.
func (d DSTRule) Transitions(lo, hi int64, stdMinutes int) []Transition {
	if lo >= hi {
		return nil
	}
	var out []Transition
	for y := YearOf(lo) - 1; y <= YearOf(hi)+1; y++ {
		start, end := d.Bounds(y, stdMinutes)
		pair := [2]Transition{
			{At: start, OffsetMinutes: stdMinutes + int(d.DeltaMinutes), DST: true},
			{At: end, OffsetMinutes: stdMinutes},
		}
		if end < start {
			pair[0], pair[1] = pair[1], pair[0]
		}
		for _, t := range pair {
			if t.At >= lo && t.At < hi {
				out = append(out, t)
			}
		}
	}
	return out
}
