// Package registry holds the compact, always resident rule set of every
// catalog zone: its standard offset, its current DST rule and the instant
// from which that rule reproduces the historical record.
package registry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/tzlist/tzoffset/catalog"
	"github.com/tzlist/tzoffset/rules"
)

// NeverValid is the ValidFrom of zones that only use historical data.
const NeverValid = math.MaxInt64

// AlwaysValid is the ValidFrom of zones whose single fixed offset also
// answers every instant before the historical floor.
const AlwaysValid = math.MinInt64

// RuleSet is the compact description of one zone.
type RuleSet struct {
	// StdOffset is the standard offset in minutes east of UTC.
	StdOffset int16
	// DST is nil for zones without daylight saving time.
	DST *rules.DSTRule
	// ValidFrom is the first unix instant the rule set applies to.
	ValidFrom int64
	// AlwaysHistorical marks zones whose offsets follow no fixed rule, such
	// as DST suspended for Ramadan.
	AlwaysHistorical bool
}

// Covers reports whether the compact rules answer queries at ts.
func (rs *RuleSet) Covers(ts int64) bool {
	return !rs.AlwaysHistorical && ts >= rs.ValidFrom
}

// HasDST reports whether the rule set includes daylight saving time.
func (rs *RuleSet) HasDST() bool {
	return rs.DST != nil
}

// Offset evaluates the compact rules at ts, in minutes east of UTC. It does
// not check Covers.
func (rs *RuleSet) Offset(ts int64) int16 {
	if rs.DST == nil {
		return rs.StdOffset
	}
	return int16(rs.DST.Offset(ts, int(rs.StdOffset)))
}

// POSIX renders the rule set as a POSIX TZ string with numeric designations,
// for example "<-05>5<-04>,M3.2.0,M11.1.0".
func (rs *RuleSet) POSIX() string {
	var b strings.Builder
	std := int(rs.StdOffset)
	b.WriteString(designation(std))
	b.WriteString(posixOffset(-std))
	if rs.DST == nil {
		return b.String()
	}
	dst := std + int(rs.DST.DeltaMinutes)
	b.WriteString(designation(dst))
	if rs.DST.DeltaMinutes != 60 {
		b.WriteString(posixOffset(-dst))
	}
	for _, r := range []rules.TransitionRule{rs.DST.Start, rs.DST.End} {
		fmt.Fprintf(&b, ",M%d.%d.%d", r.Month, r.Week, r.Weekday)
		if r.Minutes != 120 {
			b.WriteString("/" + posixOffset(int(r.Minutes)))
		}
	}
	return b.String()
}

func designation(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("<%s%02d>", sign, minutes/60)
	}
	return fmt.Sprintf("<%s%02d%02d>", sign, minutes/60, minutes%60)
}

func posixOffset(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	if minutes%60 == 0 {
		return sign + strconv.Itoa(minutes/60)
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}

// Registry is an immutable table of rule sets indexed by catalog.ID.
type Registry struct {
	sets []RuleSet
}

// New validates sets, which must hold one rule set per catalog zone in
// catalog order.
func New(sets []RuleSet) (*Registry, error) {
	if len(sets) != catalog.Len() {
		return nil, fmt.Errorf("registry: %d rule sets for %d zones", len(sets), catalog.Len())
	}
	for i := range sets {
		rs := &sets[i]
		if rs.DST == nil {
			continue
		}
		if !rs.DST.Start.Valid() || !rs.DST.End.Valid() {
			return nil, fmt.Errorf("registry: zone %s has an invalid DST rule", catalog.ID(i))
		}
	}
	return &Registry{sets: sets}, nil
}

// Get returns the rule set of id. It panics if id is not a catalog zone.
func (r *Registry) Get(id catalog.ID) *RuleSet {
	if int(id) >= len(r.sets) {
		panic(fmt.Sprintf("registry: unknown zone id %d", id))
	}
	return &r.sets[id]
}

// Len returns the number of zones in the registry.
func (r *Registry) Len() int {
	return len(r.sets)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry built from the embedded tables.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(ruleSets[:])
		if err != nil {
			panic(err)
		}
		defaultReg = reg
	})
	return defaultReg
}

// Helpers used by rules_gen.go.

func fixed(std int16, validFrom int64) RuleSet {
	return RuleSet{StdOffset: std, ValidFrom: validFrom}
}

func constant(std int16) RuleSet {
	return RuleSet{StdOffset: std, ValidFrom: AlwaysValid}
}

func seasonal(std int16, validFrom int64, d rules.DSTRule) RuleSet {
	return RuleSet{StdOffset: std, DST: &d, ValidFrom: validFrom}
}

func historicalOnly(std int16) RuleSet {
	return RuleSet{StdOffset: std, ValidFrom: NeverValid, AlwaysHistorical: true}
}

func dst(delta int16, start, end rules.TransitionRule) rules.DSTRule {
	return rules.DSTRule{DeltaMinutes: delta, Start: start, End: end}
}

func startsOn(month uint8, week rules.Week, weekday uint8, minutes int16) rules.TransitionRule {
	return rules.TransitionRule{Month: month, Week: week, Weekday: weekday, Minutes: minutes, Basis: rules.Standard}
}

func endsOn(month uint8, week rules.Week, weekday uint8, minutes int16) rules.TransitionRule {
	return rules.TransitionRule{Month: month, Week: week, Weekday: weekday, Minutes: minutes, Basis: rules.Daylight}
}
