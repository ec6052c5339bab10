// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// https://github.com/golang/go/blob/master/src/time/zoneinfo.go

// Package rfc9636 reads TZif files (RFC 9636) into their recorded
// transitions and the TZ string footer that extends them.
package rfc9636

import (
	"fmt"
	"io"
	"sort"
)

// A Location holds the transitions of one zoneinfo file.
type Location struct {
	name string
	zone []zone
	tx   []zoneTrans

	// The tzdata information can be followed by a string that describes
	// how to handle DST transitions not recorded in zoneTrans.
	// The format is the TZ environment variable without a colon; see
	// https://pubs.opengroup.org/onlinepubs/9699919799/basedefs/V1_chap08.html.
	// Example string, for America/Los_Angeles: PST8PDT,M3.2.0,M11.1.0
	extend string
}

// A zone represents a single time zone such as CET.
type zone struct {
	name   string // abbreviated name, "CET"
	offset int    // seconds east of UTC
	isDST  bool   // is this zone Daylight Savings Time?
}

// A zoneTrans represents a single time zone transition.
type zoneTrans struct {
	when         int64 // transition time, in seconds since 1970 GMT
	index        uint8 // the index of the zone that goes into effect at that time
	isstd, isutc bool  // ignored - no idea what these mean
}

// alpha is the beginning of time for zone transitions.
const alpha = -1 << 63 // math.MinInt64

// Transition is a recorded change of local time type.
type Transition struct {
	When   int64 // unix seconds
	Offset int   // seconds east of UTC from When on
	IsDST  bool
	Abbrev string
}

// Name returns the name the location was loaded with.
func (l *Location) Name() string {
	return l.name
}

// Extend returns the TZ string footer, empty when the file has none.
func (l *Location) Extend() string {
	return l.extend
}

// Transitions returns the recorded transitions in ascending order. A file
// with no transitions yields a single one at the beginning of time.
func (l *Location) Transitions() []Transition {
	out := make([]Transition, len(l.tx))
	for i, tx := range l.tx {
		z := l.zone[tx.index]
		out[i] = Transition{When: tx.when, Offset: z.offset, IsDST: z.isDST, Abbrev: z.name}
	}
	return out
}

// Lookup returns the recorded offset at sec, in seconds east of UTC, and
// whether it is daylight time. Instants after the last transition keep its
// offset; the footer is not consulted.
func (l *Location) Lookup(sec int64) (offset int, isDST bool) {
	if len(l.tx) == 0 || sec < l.tx[0].when {
		z := &l.zone[l.lookupFirstZone()]
		return z.offset, z.isDST
	}
	i := sort.Search(len(l.tx), func(i int) bool { return l.tx[i].when > sec }) - 1
	z := &l.zone[l.tx[i].index]
	return z.offset, z.isDST
}

// lookupFirstZone returns the index of the time zone to use for times
// before the first transition time, or when there are no transition
// times.
//
// The reference implementation in localtime.c from
// https://www.iana.org/time-zones/repository/releases/tzcode2013g.tar.gz
// implements the following algorithm for these cases:
//  1. If the first zone is unused by the transitions, use it.
//  2. Otherwise, if there are transition times, and the first
//     transition is to a zone in daylight time, find the first
//     non-daylight-time zone before and closest to the first transition
//     zone.
//  3. Otherwise, use the first zone that is not daylight time, if
//     there is one.
//  4. Otherwise, use the first zone.
func (l *Location) lookupFirstZone() int {
	// Case 1.
	if !l.firstZoneUsed() {
		return 0
	}

	// Case 2.
	if len(l.tx) > 0 && l.zone[l.tx[0].index].isDST {
		for zi := int(l.tx[0].index) - 1; zi >= 0; zi-- {
			if !l.zone[zi].isDST {
				return zi
			}
		}
	}

	// Case 3.
	for zi := range l.zone {
		if !l.zone[zi].isDST {
			return zi
		}
	}

	// Case 4.
	return 0
}

// firstZoneUsed reports whether the first zone is used by some
// transition.
func (l *Location) firstZoneUsed() bool {
	for _, tx := range l.tx {
		if tx.index == 0 {
			return true
		}
	}
	return false
}

// Dump writes the zones, transitions and footer of l to w.
func (l *Location) Dump(w io.Writer) {
	fmt.Fprintln(w, "Name:", l.name)
	fmt.Fprintln(w, "Zone[", len(l.zone), "]")
	for i, zone := range l.zone {
		fmt.Fprintf(w, "  [%d]: %+v\n", i, zone)
	}
	fmt.Fprintln(w, "Transition[", len(l.tx), "]")
	for i, tx := range l.tx {
		fmt.Fprintf(w, "  [%d]: %+v\n", i, tx)
	}
	fmt.Fprintln(w, "Extend:", l.extend)
}
