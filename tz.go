// Package tzoffset answers "what is the UTC offset of this IANA zone at this
// instant" from a small resident rule table, decompressing a zone's recorded
// history only when a query falls before its current rules.
package tzoffset

import (
	"math"

	"github.com/tzlist/tzoffset/catalog"
)

//go:generate go run ./cmd/tzgen -c cmd/tzgen/tzgen.yaml

// Tz is a validated timezone. The zero value is UTC.
type Tz struct {
	id  catalog.ID
	set bool
}

// UTC is the zone with a permanent offset of zero.
var UTC = Tz{id: catalog.UTC, set: true}

// Parse resolves a canonical or alias IANA name. Names are case sensitive.
func Parse(name string) (Tz, error) {
	id, ok := catalog.Resolve(name)
	if !ok {
		return Tz{}, &InvalidNameError{Name: name}
	}
	return Tz{id: id, set: true}, nil
}

// MustParse is like Parse but panics if name is unknown.
func MustParse(name string) Tz {
	tz, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return tz
}

// ListTimezones returns every canonical zone name in catalog order.
func ListTimezones() []string {
	return catalog.List()
}

// ID returns the catalog id of the zone.
func (tz Tz) ID() catalog.ID {
	if !tz.set {
		return catalog.UTC
	}
	return tz.id
}

// Name returns the canonical name, which differs from the parsed name when
// an alias was parsed.
func (tz Tz) Name() string {
	return catalog.Name(tz.ID())
}

func (tz Tz) String() string {
	return tz.Name()
}

// OffsetAtTimestamp returns the offset in minutes at ts, in unix seconds.
// It panics if the zone's embedded history is corrupt, which only a broken
// build can cause.
func (tz Tz) OffsetAtTimestamp(ts int64) int16 {
	off, err := defaultEngine().OffsetAt(tz, ts)
	if err != nil {
		panic(err)
	}
	return off
}

// OffsetAtLocal returns the offset in minutes for a wall clock time, given
// as seconds since 1970-01-01T00:00:00 local time. The wall clock is read as
// if it were UTC, so the answer may be off by the zone's offset within a few
// hours of a transition.
func (tz Tz) OffsetAtLocal(local int64) int16 {
	return tz.OffsetAtTimestamp(local)
}

// OffsetSecondsAt returns the offset in seconds at ts.
func (tz Tz) OffsetSecondsAt(ts int64) int32 {
	return tz.Offset(ts).Seconds()
}

// Offset returns the offset at ts.
func (tz Tz) Offset(ts int64) Offset {
	return Offset(tz.OffsetAtTimestamp(ts))
}

// maxEpochMillis bounds an ECMAScript time value.
const maxEpochMillis = 8.64e15

// OffsetAtMillis parses name and returns its offset in minutes at epochMs
// milliseconds since the epoch, truncated toward zero to whole seconds.
func OffsetAtMillis(name string, epochMs float64) (int16, error) {
	tz, err := Parse(name)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(epochMs) || math.Abs(epochMs) > maxEpochMillis {
		return 0, ErrInvalidInstant
	}
	return defaultEngine().OffsetAt(tz, int64(epochMs/1000))
}
