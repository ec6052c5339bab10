package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/tzlist/tzoffset/historical"
	"github.com/tzlist/tzoffset/posix/tzposix"
	"github.com/tzlist/tzoffset/registry"
	"github.com/tzlist/tzoffset/rfc9636"
)

// recorded is the part of a TZif file the generator reads.
type recorded interface {
	Transitions() []rfc9636.Transition
	Lookup(sec int64) (offset int, isDST bool)
	Extend() string
}

type zoneData struct {
	name  string
	rules registry.RuleSet
	table historical.Table
}

// minutes truncates an offset in seconds toward zero.
func minutes(secs int) int16 {
	return int16(secs / 60)
}

// buildZone derives the compact rule set and the historical table of one
// zone. The table holds every offset change from floor up to the instant
// the footer rule takes over: the earliest recorded transition from which
// the rule reproduces every later recorded offset, checked both at the
// recorded transitions and at the transitions the rule itself predicts.
func buildZone(name string, loc recorded, floor int64, alwaysHistorical bool) (zoneData, error) {
	z := zoneData{name: name}
	footer := loc.Extend()
	rs, err := tzposix.ParseRuleSet(footer)
	hasRules := footer != "" && err == nil
	if footer != "" && err != nil && !errors.Is(err, tzposix.ErrNotCompact) {
		return z, errors.Wrapf(err, "zone %s", name)
	}
	if !hasRules {
		slog.Warn("footer has no compact form, zone stays historical", "zone", name, "footer", footer)
	}

	txs := loc.Transitions()
	last := txs[len(txs)-1].When
	offsetAt := func(t int64) int16 {
		if hasRules && t >= last {
			return rs.Offset(t)
		}
		secs, _ := loc.Lookup(t)
		return minutes(secs)
	}

	table := historical.Table{{At: floor, Offset: offsetAt(floor)}}
	for _, tx := range txs {
		if tx.When <= floor {
			continue
		}
		if o := minutes(tx.Offset); o != table[len(table)-1].Offset {
			table = append(table, historical.Transition{At: tx.When, Offset: o})
		}
	}

	if alwaysHistorical || !hasRules {
		std := table[len(table)-1].Offset
		if hasRules {
			std = rs.StdOffset
		}
		z.rules = registry.RuleSet{StdOffset: std, ValidFrom: registry.NeverValid, AlwaysHistorical: true}
		z.table = table
		return z, nil
	}

	tail := table[len(table)-1]
	if got := rs.Offset(tail.At); got != tail.Offset {
		return z, errors.Errorf("zone %s: footer %q gives %d at the last transition, recorded %d", name, footer, got, tail.Offset)
	}
	k := len(table) - 2
	for ; k >= 0; k-- {
		if !rulesReproduce(&rs, table[k].At, table[k+1].At, table[k].Offset) {
			break
		}
	}
	rs.ValidFrom = table[k+1].At
	if len(table) == 1 && !rs.HasDST() {
		rs.ValidFrom = registry.AlwaysValid
	}

	kept := table[:0:0]
	for _, tr := range table {
		if tr.At < rs.ValidFrom {
			kept = append(kept, tr)
		}
	}
	if len(kept) == 0 {
		kept = table[:1]
	}
	z.rules = rs
	z.table = kept
	return z, nil
}

// rulesReproduce reports whether rs yields offset throughout [lo, hi).
func rulesReproduce(rs *registry.RuleSet, lo, hi int64, offset int16) bool {
	if rs.Offset(lo) != offset {
		return false
	}
	if !rs.HasDST() {
		return true
	}
	for _, tr := range rs.DST.Transitions(lo+1, hi, int(rs.StdOffset)) {
		if rs.Offset(tr.At) != offset {
			return false
		}
	}
	return true
}
